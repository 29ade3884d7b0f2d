package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort      = "3000"
	defaultRateLimit = 100
)

// Config holds the startup configuration of the catalog service.
// It is loaded once in main and passed to constructors, never mutated.
type Config struct {
	MongoURI    string // expected to be like: mongodb://localhost:27017/catalog
	AdminSecret string
	Port        string
	RateLimit   int // requests per IP per minute
}

func Load() (Config, error) {
	cfg := Config{
		MongoURI:    os.Getenv("MONGODB_URI"),
		AdminSecret: os.Getenv("ADMIN_SECRET_KEY"),
		Port:        os.Getenv("CATALOG_SERVICE_PORT"),
		RateLimit:   defaultRateLimit,
	}

	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("MONGODB_URI is not set")
	}

	if cfg.AdminSecret == "" {
		return Config{}, fmt.Errorf("ADMIN_SECRET_KEY is not set")
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT value: %v", err)
		}
		cfg.RateLimit = n
	}

	return cfg, nil
}
