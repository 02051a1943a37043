package app

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.HTTPAddr == "" {
		t.Fatalf("expected default http addr")
	}
	if cfg.SweepInterval != time.Hour {
		t.Fatalf("expected default sweep interval, got %v", cfg.SweepInterval)
	}
	if cfg.LoginMaxAttempts != 5 || cfg.LoginWindow != 15*time.Minute {
		t.Fatalf("expected default login throttle policy, got %d/%v", cfg.LoginMaxAttempts, cfg.LoginWindow)
	}
}

func TestNew_MemoryMode(t *testing.T) {
	t.Setenv("TASKHUB_AUTH_ACCESS_SECRET", strings.Repeat("a", 32))
	t.Setenv("TASKHUB_AUTH_REFRESH_SECRET", strings.Repeat("r", 32))
	t.Setenv("TASKHUB_DATABASE_URL", "")
	// Fast hashing for test construction (the decoy digest is hashed once).
	t.Setenv("TASKHUB_ARGON2_MEMORY_KIB", "8192")
	t.Setenv("TASKHUB_ARGON2_ITERATIONS", "1")

	cfg := LoadConfig()
	a, err := New(cfg, NewLogger("error"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Sessions() == nil {
		t.Fatalf("expected wired session service")
	}
	if a.dbEnabled {
		t.Fatalf("expected memory mode")
	}
}

func TestNew_MissingTokenSecrets(t *testing.T) {
	t.Setenv("TASKHUB_AUTH_ACCESS_SECRET", "")
	t.Setenv("TASKHUB_AUTH_REFRESH_SECRET", "")
	t.Setenv("TASKHUB_DATABASE_URL", "")

	if _, err := New(LoadConfig(), NewLogger("error")); err == nil {
		t.Fatalf("expected error without token secrets")
	}
}
