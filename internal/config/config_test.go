package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SEARCH_LIMIT", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.Equal(t, DefaultSearchLimit, cfg.SearchLimit)
}

func TestLoadSearchLimitOverride(t *testing.T) {
	t.Setenv("SEARCH_LIMIT", "5")
	assert.Equal(t, 5, Load().SearchLimit)

	// Garbage and non-positive values fall back to the default.
	t.Setenv("SEARCH_LIMIT", "beaucoup")
	assert.Equal(t, DefaultSearchLimit, Load().SearchLimit)

	t.Setenv("SEARCH_LIMIT", "0")
	assert.Equal(t, DefaultSearchLimit, Load().SearchLimit)
}
