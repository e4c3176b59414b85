package models

import (
	"time"

	"github.com/tidwall/gjson"
	"gorm.io/datatypes"
)

// PostRecord posts 表，likes/comments 以 JSON 数组存储
type PostRecord struct {
	ID           int64                       `gorm:"column:id;primary_key" json:"id"`
	AuthorID     int64                       `gorm:"column:author_id;not null;index" json:"author_id"`
	Emotion      datatypes.JSONType[Emotion] `gorm:"column:emotion;type:json" json:"emotion"`
	Reason       *string                     `gorm:"column:reason;type:text" json:"reason"`
	People       datatypes.JSONSlice[string] `gorm:"column:people;type:json" json:"people"`
	Activities   datatypes.JSONSlice[string] `gorm:"column:activities;type:json" json:"activities"`
	LandmarkName *string                     `gorm:"column:landmark_name;type:varchar(255)" json:"landmark_name"`
	Lat          *float64                    `gorm:"column:lat;index:idx_lat_lng" json:"lat"`
	Lng          *float64                    `gorm:"column:lng;index:idx_lat_lng" json:"lng"`
	Privacy      Privacy                     `gorm:"column:privacy;type:varchar(16);not null;default:'private';index:idx_privacy_ts" json:"privacy"`
	Timestamp    time.Time                   `gorm:"column:timestamp;not null;index:idx_privacy_ts" json:"timestamp"`
	Likes        datatypes.JSON              `gorm:"column:likes;type:json" json:"likes"`
	Comments     datatypes.JSON              `gorm:"column:comments;type:json" json:"comments"`
	CreatedAt    time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (PostRecord) TableName() string {
	return "posts"
}

// ToPost 转为领域对象，计数直接从 JSON 数组长度读取
func (r *PostRecord) ToPost() *Post {
	p := &Post{
		ID:            r.ID,
		AuthorID:      r.AuthorID,
		Emotion:       r.Emotion.Data(),
		Reason:        r.Reason,
		People:        nonNil(r.People),
		Activities:    nonNil(r.Activities),
		Privacy:       r.Privacy,
		Timestamp:     r.Timestamp,
		LikesCount:    jsonLen(r.Likes),
		CommentsCount: jsonLen(r.Comments),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.LandmarkName != nil || (r.Lat != nil && r.Lng != nil) {
		p.Location = &Location{LandmarkName: r.LandmarkName}
		if r.Lat != nil && r.Lng != nil {
			p.Location.Point = &GeoPoint{Lon: *r.Lng, Lat: *r.Lat}
		}
	}
	return p
}

func jsonLen(raw datatypes.JSON) int {
	if len(raw) == 0 {
		return 0
	}
	return int(gjson.GetBytes(raw, "#").Int())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
