package config

import "time"

// Geo 地图查询调优参数
type Geo struct {
	DefaultLimit      int           `json:"default_limit" yaml:"default_limit"`
	MaxLimit          int           `json:"max_limit" yaml:"max_limit"`
	ViewportLookback  time.Duration `json:"viewport_lookback" yaml:"viewport_lookback"`
	AreaLookback      time.Duration `json:"area_lookback" yaml:"area_lookback"`
	ClusterMaxZoom    int           `json:"cluster_max_zoom" yaml:"cluster_max_zoom"`
	DefaultZoom       *int          `json:"default_zoom" yaml:"default_zoom"` // 0 也是合法缩放级别
	DefaultGridSize   int           `json:"default_grid_size" yaml:"default_grid_size"`
	MaxGridSize       int           `json:"max_grid_size" yaml:"max_grid_size"`
	NearbyMaxDistance float64       `json:"nearby_max_distance" yaml:"nearby_max_distance"` // 米
	NearbyLimit       int           `json:"nearby_limit" yaml:"nearby_limit"`
	QueryTimeout      time.Duration `json:"query_timeout" yaml:"query_timeout"`
	ClusterSalt       string        `json:"cluster_salt" yaml:"cluster_salt"`
}

func DefaultGeo() *Geo {
	g := &Geo{}
	g.applyDefaults()
	return g
}

// Zoom 未聚合请求缺省的缩放级别
func (g *Geo) Zoom() int {
	if g.DefaultZoom == nil {
		return 10
	}
	return *g.DefaultZoom
}

func (g *Geo) applyDefaults() {
	if g.DefaultLimit <= 0 {
		g.DefaultLimit = 500
	}
	if g.MaxLimit <= 0 {
		g.MaxLimit = 2000
	}
	if g.ViewportLookback <= 0 {
		g.ViewportLookback = 7 * 24 * time.Hour
	}
	if g.AreaLookback <= 0 {
		g.AreaLookback = 30 * 24 * time.Hour
	}
	if g.ClusterMaxZoom <= 0 {
		g.ClusterMaxZoom = 15
	}
	if g.DefaultZoom == nil {
		zoom := 10
		g.DefaultZoom = &zoom
	}
	if g.DefaultGridSize <= 0 {
		g.DefaultGridSize = 50
	}
	if g.MaxGridSize <= 0 {
		g.MaxGridSize = 500
	}
	if g.NearbyMaxDistance <= 0 {
		g.NearbyMaxDistance = 5000
	}
	if g.NearbyLimit <= 0 {
		g.NearbyLimit = 50
	}
	if g.QueryTimeout <= 0 {
		g.QueryTimeout = 10 * time.Second
	}
	if g.ClusterSalt == "" {
		g.ClusterSalt = "moodmap-cluster"
	}
}
