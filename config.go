package main

import (
	"os"
	"strings"
)

// Config holds all environment-level settings. Read once at startup, no
// hot-reload.
type Config struct {
	DatabaseDSN string
	APIKey      string
	DataDir     string
	Port        string
	LogMode     string
	AutoMigrate bool
}

var cfg Config

func loadConfig() Config {
	c := Config{
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		APIKey:      envOr("API_KEY", "default_api_key"),
		DataDir:     envOr("DATA_DIR", "data"),
		Port:        envOr("PORT", "8080"),
		LogMode:     envOr("LOG_MODE", "dev"),
		AutoMigrate: true,
	}
	if v := strings.ToLower(os.Getenv("DB_AUTO_MIGRATE")); v == "false" || v == "0" || v == "no" {
		c.AutoMigrate = false
	}
	return c
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
