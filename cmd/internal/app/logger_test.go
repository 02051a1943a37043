package app

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	log := NewLogger("debug")
	if log == nil {
		t.Fatalf("expected logger")
	}
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("expected debug enabled")
	}

	log = NewLogger("error")
	if log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info disabled at error level")
	}

	// Unknown levels fall back to info.
	log = NewLogger("bogus")
	if !log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info enabled on fallback")
	}
}
