package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type config struct {
	Port          string
	DBPath        string
	Analytics     bool
	AdminUsername string
	AdminPassword string
	ViewTTL       time.Duration
	MaxViews      int

	// Set when the admin credentials fell back to the development defaults.
	DefaultAdminUsername bool
	DefaultAdminPassword bool
}

// loadConfig reads the server settings from getenv, filling in defaults.
func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		Port:          getenv("PORT"),
		DBPath:        getenv("DB_PATH"),
		Analytics:     !strings.EqualFold(getenv("ANALYTICS"), "off"),
		AdminUsername: getenv("ADMIN_USERNAME"),
		AdminPassword: getenv("ADMIN_PASSWORD"),
		ViewTTL:       30 * time.Minute,
		MaxViews:      10000,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "portfolio.db"
	}
	// Default credentials for development (set both in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		cfg.DefaultAdminUsername = true
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		cfg.DefaultAdminPassword = true
	}

	if raw := getenv("VIEW_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return config{}, fmt.Errorf("invalid VIEW_TTL %q: %w", raw, err)
		}
		if ttl <= 0 {
			return config{}, fmt.Errorf("invalid VIEW_TTL %q: must be positive", raw)
		}
		cfg.ViewTTL = ttl
	}
	if raw := getenv("MAX_VIEWS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return config{}, fmt.Errorf("invalid MAX_VIEWS %q: must be a positive integer", raw)
		}
		cfg.MaxViews = n
	}
	return cfg, nil
}
