package db

import (
	"errors"
	"os"
	"testing"

	"tribune/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Unique-index violations must surface as gorm.ErrDuplicatedKey so the
// handlers can answer with a validation error instead of a 500.
func TestDuplicateKeyTranslated(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if DB == nil {
		Init(dsn)
	}

	DB.Exec("DELETE FROM replies")
	DB.Exec("DELETE FROM topics")
	DB.Exec("DELETE FROM auth_tokens")
	DB.Exec("DELETE FROM users")

	user := models.User{Username: "thomas", Email: "thomas@example.com", Password: "x"}
	require.NoError(t, DB.Create(&user).Error)

	dup := models.User{Username: "thomas", Email: "autre@example.com", Password: "x"}
	err := DB.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got: %v", err)
}
