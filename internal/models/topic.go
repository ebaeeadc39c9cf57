package models

import (
	"time"
)

// Topic categories, matching the values accepted on the wire.
const (
	CategoryGeneral   = "general"
	CategoryQuestions = "questions"
	CategoryAide      = "aide"
	CategoryAnnonces  = "annonces"
)

var Categories = []string{CategoryGeneral, CategoryQuestions, CategoryAide, CategoryAnnonces}

// ValidCategory reports whether name is one of the accepted categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

type Topic struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"size:20;default:'general';not null" json:"category"`
	AuthorID  uint      `gorm:"not null;index" json:"author"`
	Author    User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Views     int       `gorm:"default:0" json:"views"`
	IsPinned  bool      `gorm:"default:false" json:"is_pinned"`
	IsClosed  bool      `gorm:"default:false" json:"is_closed"`

	// 非数据库字段，用于查询时填充
	ReplyCount int `gorm:"-" json:"reply_count"`
}
