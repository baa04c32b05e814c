package config

import (
	"os"
	"testing"
	"time"
)

var configKeys = []string{
	"PORT", "TABLE_MODE", "JWT_SECRET", "SEAT_TOKEN_TTL_MINUTES", "SEAT_IDLE_TIMEOUT_MINUTES",
	"CLEANUP_INTERVAL_MINUTES", "FRONTEND_URL", "ALLOWED_ORIGINS", "STATIC_DIR",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		key := key // per-iteration copy (pre-Go 1.22 loop semantics)
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
			os.Unsetenv(key)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TableMode != TableModeHotseat {
		t.Fatalf("expected hotseat mode, got %q", cfg.TableMode)
	}
	if cfg.SeatTokenTTL() != 720*time.Minute {
		t.Fatalf("unexpected seat token ttl: %v", cfg.SeatTokenTTL())
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected allowed origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("TABLE_MODE", " Seated ")
	t.Setenv("SEAT_IDLE_TIMEOUT_MINUTES", "10")
	t.Setenv("FRONTEND_URL", "https://connect4.example")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" || cfg.TableMode != TableModeSeated {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SeatIdleTimeout() != 10*time.Minute {
		t.Fatalf("unexpected idle timeout: %v", cfg.SeatIdleTimeout())
	}
	want := []string{"https://connect4.example", "http://localhost:5173", "https://a.example", "https://b.example"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("allowed origins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Fatalf("allowed origins = %v, want %v", cfg.AllowedOrigins, want)
		}
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("TABLE_MODE", "tournament")
	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for an unknown table mode")
	}
}

func TestLoadRejectsBadInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLEANUP_INTERVAL_MINUTES", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for a non-numeric interval")
	}
}
