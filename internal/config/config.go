package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the process-wide configuration, built once in main and passed
// explicitly to the services that need it.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// TrialDays is the length of the free trial granted at registration.
	TrialDays int
}

// Load reads configuration from environment variables. DATABASE_URL and
// JWT_SECRET are required; everything else has development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           8080,
		RedisAddr:      "localhost:6379",
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		MinioEndpoint:  "localhost:9000",
		MinioAccessKey: "minioadmin",
		MinioSecretKey: "minioadmin",
		MinioBucket:    "hotelhub-id-proofs",
		TrialDays:      10,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = db
		}
	}

	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.MinioEndpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.MinioAccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.MinioSecretKey = v
	}
	if os.Getenv("MINIO_USE_SSL") == "true" {
		cfg.MinioUseSSL = true
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.MinioBucket = v
	}

	if v := os.Getenv("TRIAL_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return nil, fmt.Errorf("invalid TRIAL_DAYS %q", v)
		}
		cfg.TrialDays = days
	}

	return cfg, nil
}
