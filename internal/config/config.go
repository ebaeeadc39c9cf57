package config

import (
	"os"
	"strconv"
)

const DefaultSearchLimit = 20

type Config struct {
	Port        string
	DatabaseURL string
	GinMode     string
	SearchLimit int
}

// Load reads settings from the environment. Defaults keep local dev working
// without a .env file.
func Load() Config {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GinMode:     os.Getenv("GIN_MODE"),
		SearchLimit: DefaultSearchLimit,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		// Fallback for local dev if not set
		cfg.DatabaseURL = "host=localhost user=postgres password=postgres dbname=tribune port=5432 sslmode=disable"
	}
	if v := os.Getenv("SEARCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SearchLimit = n
		}
	}
	return cfg
}
