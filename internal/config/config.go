package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	TableModeHotseat = "hotseat"
	TableModeSeated  = "seated"
)

type Config struct {
	Port                   string   `env:"PORT" envDefault:"8080"`
	TableMode              string   `env:"TABLE_MODE" envDefault:"hotseat"`
	JWTSecret              string   `env:"JWT_SECRET" envDefault:"your-secret-key-change-this-in-production"`
	SeatTokenTTLMinutes    int      `env:"SEAT_TOKEN_TTL_MINUTES" envDefault:"720"`
	SeatIdleTimeoutMinutes int      `env:"SEAT_IDLE_TIMEOUT_MINUTES" envDefault:"30"`
	CleanupIntervalMinutes int      `env:"CLEANUP_INTERVAL_MINUTES" envDefault:"5"`
	FrontendURL            string   `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	ExtraOrigins           []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	StaticDir              string   `env:"STATIC_DIR" envDefault:"./static"`

	// Frontend URL + local dev server + ALLOWED_ORIGINS, built by Load
	AllowedOrigins []string
}

// LoadDotEnv reads .env from the working directory or its parent. A missing
// file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("[CONFIG] No .env file found")
		}
	}
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.TableMode = strings.ToLower(strings.TrimSpace(cfg.TableMode))
	if cfg.TableMode != TableModeHotseat && cfg.TableMode != TableModeSeated {
		return nil, fmt.Errorf("TABLE_MODE must be %q or %q, got %q", TableModeHotseat, TableModeSeated, cfg.TableMode)
	}
	if cfg.SeatTokenTTLMinutes <= 0 || cfg.SeatIdleTimeoutMinutes <= 0 || cfg.CleanupIntervalMinutes <= 0 {
		return nil, fmt.Errorf("seat token TTL, idle timeout and cleanup interval must be positive")
	}

	cfg.AllowedOrigins = []string{
		cfg.FrontendURL,
		"http://localhost:5173", // Local development
	}
	for _, origin := range cfg.ExtraOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}

func (c *Config) SeatTokenTTL() time.Duration {
	return time.Duration(c.SeatTokenTTLMinutes) * time.Minute
}

func (c *Config) SeatIdleTimeout() time.Duration {
	return time.Duration(c.SeatIdleTimeoutMinutes) * time.Minute
}

func (c *Config) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalMinutes) * time.Minute
}
