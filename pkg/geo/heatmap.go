package geo

import "math"

// Cell 热力图单元格
type Cell struct {
	LatBucket int
	LngBucket int
	// Center 单元格中心，不是某条帖子的真实位置
	Center          Point
	Members         []int
	Dominant        int
	DominantEmotion string
}

// Intensity 单元格内帖子数
func (c Cell) Intensity() int { return len(c.Members) }

type bucketKey struct {
	lat, lng int
}

// Bucket 计算点所在的网格下标，不做越界截断
func Bucket(box Box, size int, lat, lng float64) (int, int) {
	g := float64(size)
	latBucket := int(math.Floor((lat - box.MinLat) / box.LatSpan() * g))
	lngBucket := int(math.Floor((lng - box.MinLng) / box.LngSpan() * g))
	return latBucket, lngBucket
}

// CellCenter 网格中心坐标
func CellCenter(box Box, size int, latBucket, lngBucket int) Point {
	g := float64(size)
	return Point{
		Lat: box.MinLat + (float64(latBucket)+0.5)*box.LatSpan()/g,
		Lng: box.MinLng + (float64(lngBucket)+0.5)*box.LngSpan()/g,
	}
}

// BucketPoints 把点按 size×size 网格分桶。
// 任一方向跨度为 0 时直接返回空结果；中心坐标非有限数的单元格被丢弃。
// 输出顺序为各单元格首次出现的顺序。
func BucketPoints(box Box, size int, points []Point, emotions []string) []Cell {
	if size <= 0 || box.LatSpan() == 0 || box.LngSpan() == 0 {
		return []Cell{}
	}

	index := make(map[bucketKey]int)
	cells := make([]Cell, 0)
	for i, p := range points {
		lb, gb := Bucket(box, size, p.Lat, p.Lng)
		key := bucketKey{lat: lb, lng: gb}
		pos, ok := index[key]
		if !ok {
			pos = len(cells)
			index[key] = pos
			cells = append(cells, Cell{LatBucket: lb, LngBucket: gb, Dominant: -1})
		}
		cells[pos].Members = append(cells[pos].Members, i)
	}

	out := cells[:0]
	for _, c := range cells {
		c.Center = CellCenter(box, size, c.LatBucket, c.LngBucket)
		if !finite(c.Center.Lat) || !finite(c.Center.Lng) {
			continue
		}
		names := make([]string, len(c.Members))
		for k, idx := range c.Members {
			if idx < len(emotions) {
				names[k] = emotions[idx]
			}
		}
		if name, k := Dominant(names); k >= 0 {
			c.Dominant = c.Members[k]
			c.DominantEmotion = name
		}
		out = append(out, c)
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
