package types

import (
	"time"

	"moodmap/models"
	"moodmap/pkg/geo"
)

// 地图项类型
const (
	ItemTypeSingle  = "single"
	ItemTypeCluster = "cluster"
)

// ViewportQuery 视口查询参数，保留原始字符串，由服务层校验
type ViewportQuery struct {
	SwLat     string `form:"swLat"`
	SwLng     string `form:"swLng"`
	NeLat     string `form:"neLat"`
	NeLng     string `form:"neLng"`
	CenterLat string `form:"centerLat"`
	CenterLng string `form:"centerLng"`
	Since     string `form:"since"`
	Limit     string `form:"limit"`
	Privacy   string `form:"privacy"` // 忽略，地图只看公开帖
	Cluster   string `form:"cluster"`
	ZoomLevel string `form:"zoomLevel"`
}

// BoundsQuery 热力图 / 区域统计参数
type BoundsQuery struct {
	SwLat    string `form:"swLat"`
	SwLng    string `form:"swLng"`
	NeLat    string `form:"neLat"`
	NeLng    string `form:"neLng"`
	GridSize string `form:"gridSize"`
}

// NearbyQuery 附近帖子参数，坐标来自路径
type NearbyQuery struct {
	Lat         string `uri:"lat"`
	Lng         string `uri:"lng"`
	MaxDistance string `form:"maxDistance"` // 米
	Limit       string `form:"limit"`
}

// BoxFilter 存储层矩形查询条件，Privacy 始终参与查询
type BoxFilter struct {
	Box     geo.Box
	Since   time.Time
	Privacy models.Privacy
	Limit   int // <=0 不限制
}

// NearFilter 存储层邻近查询条件
type NearFilter struct {
	Center            geo.Point
	MaxDistanceMeters float64
	Since             time.Time
	Privacy           models.Privacy
	Limit             int
}

// NearHit 邻近查询命中，按距离升序
type NearHit struct {
	Post           *models.Post
	DistanceMeters float64
}

// EmotionCount 按情绪名分组的计数，缺失情绪名时 Name 为空
type EmotionCount struct {
	Name  string
	Count int
}

// AreaCounts 区域分组统计结果
type AreaCounts struct {
	Total     int
	ByEmotion []EmotionCount
}

// AuthorBrief 作者简要信息
type AuthorBrief struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

// PostView 对外输出的帖子，只带计数不带点赞/评论明细
type PostView struct {
	ID            string           `json:"id"`
	Author        *AuthorBrief     `json:"author"`
	Emotion       models.Emotion   `json:"emotion"`
	Reason        *string          `json:"reason,omitempty"`
	Location      *models.Location `json:"location,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
	Privacy       models.Privacy   `json:"privacy"`
	LikesCount    int              `json:"likesCount"`
	CommentsCount int              `json:"commentsCount"`
	People        []string         `json:"people"`
	Activities    []string         `json:"activities"`
	DistanceKm    *float64         `json:"distanceKm,omitempty"`
}

// SingleItem 未被聚合的单条帖子
type SingleItem struct {
	Type string `json:"type"`
	PostView
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ClusterItem 聚合点
type ClusterItem struct {
	Type                  string          `json:"type"`
	ID                    string          `json:"id"`
	Centroid              LatLng          `json:"centroid"`
	Count                 int             `json:"count"`
	RepresentativeEmotion *models.Emotion `json:"representativeEmotion"`
}

// NearbyItem 附近帖子，distance 单位为公里
type NearbyItem struct {
	PostView
	Distance float64 `json:"distance"`
}

// HeatCell 热力图单元格，坐标为网格中心
type HeatCell struct {
	Lat             float64         `json:"lat"`
	Lng             float64         `json:"lng"`
	Intensity       int             `json:"intensity"`
	DominantEmotion *models.Emotion `json:"dominantEmotion"`
}

// AreaStats 区域情绪统计
type AreaStats struct {
	TotalPosts       int            `json:"totalPosts"`
	EmotionBreakdown map[string]int `json:"emotionBreakdown"`
	PostsPerDay      float64        `json:"postsPerDay"`
}
