package geo

// Dominant 对 names 做多数投票。
// 单次遍历维护 (best, bestCount)，只有计数严格大于当前最大值时才更新，
// 所以并列时胜出的是最先达到该计数的名字。空名字不参与投票。
// 返回胜出名字以及第一个携带该名字的下标，没有可投票的名字时返回 "", -1。
func Dominant(names []string) (string, int) {
	counts := make(map[string]int, len(names))
	best, bestCount := "", 0
	for _, name := range names {
		if name == "" {
			continue
		}
		counts[name]++
		if counts[name] > bestCount {
			best, bestCount = name, counts[name]
		}
	}
	if bestCount == 0 {
		return "", -1
	}
	for i, name := range names {
		if name == best {
			return best, i
		}
	}
	return "", -1
}
