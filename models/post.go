package models

import (
	"time"

	"moodmap/pkg/geo"
)

type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyFriends Privacy = "friends"
	PrivacyPrivate Privacy = "private"
)

// Emotion 情绪，Attributes 为稀疏的评分项，任意项都可能缺失
type Emotion struct {
	Name       string              `json:"name" bson:"name"`
	Attributes map[string]*float64 `json:"attributes,omitempty" bson:"attributes,omitempty"`
}

type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type Location struct {
	LandmarkName *string   `json:"landmarkName,omitempty"`
	Point        *GeoPoint `json:"point,omitempty"`
}

// Post 只读的帖子视图，点赞和评论只保留数量
type Post struct {
	ID            int64     `json:"id"`
	AuthorID      int64     `json:"authorId"`
	Emotion       Emotion   `json:"emotion"`
	Reason        *string   `json:"reason,omitempty"`
	People        []string  `json:"people"`
	Activities    []string  `json:"activities"`
	Location      *Location `json:"location,omitempty"`
	Privacy       Privacy   `json:"privacy"`
	Timestamp     time.Time `json:"timestamp"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Point 返回帖子的有效坐标
func (p *Post) Point() (geo.Point, bool) {
	if p.Location == nil || p.Location.Point == nil {
		return geo.Point{}, false
	}
	pt := p.Location.Point
	if !geo.ValidCoordinate(pt.Lat, pt.Lon) {
		return geo.Point{}, false
	}
	return geo.Point{Lat: pt.Lat, Lng: pt.Lon}, true
}
