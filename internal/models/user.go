package models

import (
	"time"
)

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"` // bcrypt hash
	FirstName       string    `gorm:"size:150" json:"first_name"`
	LastName        string    `gorm:"size:150" json:"last_name"`
	Bio             string    `gorm:"size:500" json:"bio"`
	Avatar          string    `json:"avatar"` // URL or emoji reference, no upload handling here
	DateInscription time.Time `gorm:"autoCreateTime" json:"date_inscription"`
}
