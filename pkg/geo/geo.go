package geo

import (
	"math"
	"strconv"
	"strings"
)

// EarthRadiusKm 地球平均半径
const EarthRadiusKm = 6371.0

// Point 经纬度坐标
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Box 归一化后的矩形范围
type Box struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// LatSpan 纬度跨度
func (b Box) LatSpan() float64 { return b.MaxLat - b.MinLat }

// LngSpan 经度跨度
func (b Box) LngSpan() float64 { return b.MaxLng - b.MinLng }

// Contains 判断点是否在范围内（含边界）
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// DistanceKm 计算两点间的大圆距离（haversine），单位 km
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ValidCoordinate 坐标是否为有限数且在合法范围
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// ParseCoordinate 解析字符串坐标，任一无法解析或越界返回 false
func ParseCoordinate(lat, lng string) (Point, bool) {
	la, ok := parseFloat(lat)
	if !ok {
		return Point{}, false
	}
	ln, ok := parseFloat(lng)
	if !ok {
		return Point{}, false
	}
	if !ValidCoordinate(la, ln) {
		return Point{}, false
	}
	return Point{Lat: la, Lng: ln}, true
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizeBounds 两个角点可以是任意对角顺序
func NormalizeBounds(a, b Point) Box {
	return Box{
		MinLat: math.Min(a.Lat, b.Lat),
		MaxLat: math.Max(a.Lat, b.Lat),
		MinLng: math.Min(a.Lng, b.Lng),
		MaxLng: math.Max(a.Lng, b.Lng),
	}
}

// MetersToKm 距离单位换算
func MetersToKm(m float64) float64 {
	return m / 1000
}
