package config

import (
	"os"
	"time"
)

type Config struct {
	HTTP_PORT    string        `env:"HTTP_PORT"`
	API_BASE_URL string        `env:"API_BASE_URL"`
	SESSION_TTL  time.Duration `env:"SESSION_TTL"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTP_PORT:    os.Getenv("HTTP_PORT"),
		API_BASE_URL: os.Getenv("API_BASE_URL"),
	}

	if cfg.HTTP_PORT == "" {
		cfg.HTTP_PORT = "8080"
	}
	if cfg.API_BASE_URL == "" {
		cfg.API_BASE_URL = "http://localhost:8081"
	}

	cfg.SESSION_TTL = 30 * time.Minute
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		cfg.SESSION_TTL = d
	}

	return cfg, nil
}
