package models

import "time"

type Users struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	Nickname  string    `gorm:"column:nickname;type:varchar(64);not null;default:''" json:"nickname"`
	Avatar    string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
