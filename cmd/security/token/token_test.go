package token

import (
	"strings"
	"testing"
	"time"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AccessSecret = []byte(strings.Repeat("a", 32))
	cfg.RefreshSecret = []byte(strings.Repeat("r", 32))
	return cfg
}

func testIssuer(t *testing.T) *Issuer {
	t.Helper()

	iss, err := NewIssuer(testConfig())
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return iss
}

func TestIssueAndVerifyAccess(t *testing.T) {
	iss := testIssuer(t)
	now := time.Now().UTC()

	tok, exp, err := iss.IssueAccess("01JC4WT4A0B3N3YVKJ9Z8Q7R2M", now)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if !exp.After(now) {
		t.Fatalf("expected exp after now")
	}

	claims, err := iss.VerifyAccess(tok, now.Add(time.Second))
	if err != nil {
		t.Fatalf("VerifyAccess: %v", err)
	}
	if claims.UserID != "01JC4WT4A0B3N3YVKJ9Z8Q7R2M" {
		t.Fatalf("uid mismatch: %q", claims.UserID)
	}
}

func TestIssueAndVerifyRefresh_CarriesTokenID(t *testing.T) {
	iss := testIssuer(t)
	now := time.Now().UTC()

	tok, _, err := iss.IssueRefresh("user-1", "rec-1", now)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := iss.VerifyRefresh(tok, now.Add(time.Second))
	if err != nil {
		t.Fatalf("VerifyRefresh: %v", err)
	}
	if claims.ID != "rec-1" {
		t.Fatalf("jti mismatch: %q", claims.ID)
	}
}

func TestVerify_Expired(t *testing.T) {
	iss := testIssuer(t)
	now := time.Now().UTC()

	tok, _, err := iss.IssueAccess("user-1", now)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	// Far past expiry plus skew.
	_, err = iss.VerifyAccess(tok, now.Add(24*time.Hour))
	if err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	iss := testIssuer(t)
	now := time.Now().UTC()

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := iss.VerifyAccess(tok, now); err != ErrTokenInvalid {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestVerify_SecretsAreSeparate(t *testing.T) {
	iss := testIssuer(t)
	now := time.Now().UTC()

	access, _, err := iss.IssueAccess("user-1", now)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	refresh, _, err := iss.IssueRefresh("user-1", "rec-1", now)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	if _, err := iss.VerifyRefresh(access, now); err != ErrTokenInvalid {
		t.Fatalf("access token accepted as refresh: %v", err)
	}
	if _, err := iss.VerifyAccess(refresh, now); err != ErrTokenInvalid {
		t.Fatalf("refresh token accepted as access: %v", err)
	}
}

func TestVerify_ClockSkewTolerated(t *testing.T) {
	iss := testIssuer(t)
	now := time.Now().UTC()

	tok, exp, err := iss.IssueAccess("user-1", now)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	// Just past expiry but inside the skew window.
	if _, err := iss.VerifyAccess(tok, exp.Add(10*time.Second)); err != nil {
		t.Fatalf("expected skew tolerance, got %v", err)
	}
}

func TestNewIssuer_RejectsWeakConfig(t *testing.T) {
	cfg := testConfig()
	cfg.RefreshSecret = cfg.AccessSecret
	if _, err := NewIssuer(cfg); err != ErrConfig {
		t.Fatalf("expected ErrConfig for shared secrets, got %v", err)
	}

	cfg = testConfig()
	cfg.AccessSecret = []byte("short")
	if _, err := NewIssuer(cfg); err != ErrConfig {
		t.Fatalf("expected ErrConfig for short secret, got %v", err)
	}

	cfg = testConfig()
	cfg.RefreshTTL = cfg.AccessTTL
	if _, err := NewIssuer(cfg); err != ErrConfig {
		t.Fatalf("expected ErrConfig for refresh ttl <= access ttl, got %v", err)
	}
}

func TestLoadConfigFromEnv_MissingSecrets(t *testing.T) {
	t.Setenv("TASKHUB_AUTH_ACCESS_SECRET", "")
	t.Setenv("TASKHUB_AUTH_REFRESH_SECRET", "")
	if _, err := LoadConfigFromEnv(); err != ErrConfig {
		t.Fatalf("expected ErrConfig on missing secrets, got %v", err)
	}
}

func TestLoadConfigFromEnv_Valid(t *testing.T) {
	t.Setenv("TASKHUB_AUTH_ACCESS_SECRET", strings.Repeat("a", 32))
	t.Setenv("TASKHUB_AUTH_REFRESH_SECRET", strings.Repeat("r", 32))
	t.Setenv("TASKHUB_AUTH_ISSUER", "taskhub-test")
	t.Setenv("TASKHUB_AUTH_ACCESS_TTL", "10m")
	t.Setenv("TASKHUB_AUTH_REFRESH_TTL", "48h")
	t.Setenv("TASKHUB_AUTH_CLOCK_SKEW", "20s")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Issuer != "taskhub-test" {
		t.Fatalf("issuer mismatch: %q", cfg.Issuer)
	}
	if cfg.AccessTTL != 10*time.Minute {
		t.Fatalf("access ttl mismatch: %v", cfg.AccessTTL)
	}
	if cfg.RefreshTTL != 48*time.Hour {
		t.Fatalf("refresh ttl mismatch: %v", cfg.RefreshTTL)
	}
	if cfg.ClockSkew != 20*time.Second {
		t.Fatalf("clock skew mismatch: %v", cfg.ClockSkew)
	}
}

func TestHashHelpers_StableHex(t *testing.T) {
	h1 := HashSHA256Hex("some-token")
	h2 := HashSHA256Hex("some-token")
	if h1 != h2 || len(h1) != 64 {
		t.Fatalf("expected stable 64-char hex, got %q / %q", h1, h2)
	}

	m1 := HashHMACSHA256Hex("some-token", []byte("key-one"))
	m2 := HashHMACSHA256Hex("some-token", []byte("key-two"))
	if m1 == m2 {
		t.Fatalf("expected key to change the digest")
	}
	if len(m1) != 64 {
		t.Fatalf("expected 64-char hex, got %d chars", len(m1))
	}
}
