package app

import (
	"testing"
	"time"
)

func TestEnvString(t *testing.T) {
	t.Setenv("TASKHUB_TEST_STR", "  value  ")
	if got := EnvString("TASKHUB_TEST_STR", "def"); got != "value" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := EnvString("TASKHUB_TEST_STR_MISSING", "def"); got != "def" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("TASKHUB_TEST_BOOL", "true")
	if !EnvBool("TASKHUB_TEST_BOOL", false) {
		t.Fatalf("expected true")
	}
	t.Setenv("TASKHUB_TEST_BOOL", "not-a-bool")
	if EnvBool("TASKHUB_TEST_BOOL", false) {
		t.Fatalf("expected default on parse error")
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("TASKHUB_TEST_INT", "42")
	if got := EnvInt("TASKHUB_TEST_INT", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("TASKHUB_TEST_INT", "-1")
	if got := EnvInt("TASKHUB_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default for non-positive, got %d", got)
	}
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("TASKHUB_TEST_DUR", "90s")
	if got := EnvDuration("TASKHUB_TEST_DUR", time.Minute); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}
	t.Setenv("TASKHUB_TEST_DUR", "bogus")
	if got := EnvDuration("TASKHUB_TEST_DUR", time.Minute); got != time.Minute {
		t.Fatalf("expected default, got %v", got)
	}
}
