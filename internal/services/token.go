package services

import (
	"errors"
	"strings"

	"tribune/internal/db"
	"tribune/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrCreateToken returns the user's auth token, minting one on first use.
// Login and registration share this so a repeated login hands back the same key.
func GetOrCreateToken(userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	err := db.DB.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token = models.AuthToken{
		Key:    NewTokenKey(),
		UserID: userID,
	}
	if err := db.DB.Create(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindTokenUser resolves a bearer key to its owning user.
func FindTokenUser(key string) (*models.User, error) {
	var token models.AuthToken
	if err := db.DB.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token.User, nil
}

// NewTokenKey builds an opaque 32-char hex key from a v4 UUID.
func NewTokenKey() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
