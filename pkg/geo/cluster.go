package geo

import "math"

const (
	// BaseClusterRadiusKm zoom=0 时的聚合半径
	BaseClusterRadiusKm = 50.0
	// MinClusterRadiusKm 半径下限，避免高缩放级别半径趋近 0
	MinClusterRadiusKm = 0.1
)

// ClusterRadiusKm 每放大一级半径减半
func ClusterRadiusKm(zoom int) float64 {
	return math.Max(MinClusterRadiusKm, BaseClusterRadiusKm/math.Pow(2, float64(zoom)))
}

// Cluster 一组聚合后的点，Members 为输入切片的下标（保持输入顺序）
type Cluster struct {
	Members  []int
	Centroid Point
	// Dominant 代表情绪所属成员的下标，没有可用情绪时为 -1
	Dominant        int
	DominantEmotion string
}

// Count 成员数
func (c Cluster) Count() int { return len(c.Members) }

// ClusterPoints 贪心单遍聚合。
// 按输入顺序遍历，每个未处理的点作为锚点开启新簇，
// 之后所有未处理且与锚点距离 <= radius 的点并入该簇。
// 只与锚点比较，不与成员或质心比较。
// points 与 emotions 一一对应，调用方负责剔除无坐标的点。
func ClusterPoints(points []Point, emotions []string, zoom int) []Cluster {
	radius := ClusterRadiusKm(zoom)
	processed := make([]bool, len(points))
	clusters := make([]Cluster, 0, len(points))

	for i, anchor := range points {
		if processed[i] {
			continue
		}
		processed[i] = true
		members := []int{i}

		for j := i + 1; j < len(points); j++ {
			if processed[j] {
				continue
			}
			if DistanceKm(anchor.Lat, anchor.Lng, points[j].Lat, points[j].Lng) <= radius {
				members = append(members, j)
				processed[j] = true
			}
		}

		clusters = append(clusters, buildCluster(members, points, emotions))
	}
	return clusters
}

func buildCluster(members []int, points []Point, emotions []string) Cluster {
	var sumLat, sumLng float64
	names := make([]string, len(members))
	for k, idx := range members {
		sumLat += points[idx].Lat
		sumLng += points[idx].Lng
		if idx < len(emotions) {
			names[k] = emotions[idx]
		}
	}
	n := float64(len(members))

	c := Cluster{
		Members:  members,
		Centroid: Point{Lat: sumLat / n, Lng: sumLng / n},
		Dominant: -1,
	}
	if name, k := Dominant(names); k >= 0 {
		c.Dominant = members[k]
		c.DominantEmotion = name
	}
	return c
}

// RoundTo 四舍五入到指定小数位
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
