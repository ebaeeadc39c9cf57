package models

import (
	"time"
)

// AuthToken is the opaque bearer token handed out at registration and login.
// One row per user: repeated logins return the existing key.
type AuthToken struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
