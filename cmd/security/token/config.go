package token

import (
	"os"
	"time"
)

const minSecretBytes = 32

// Config defines the token issuance surface.
//
// Access and refresh secrets MUST differ; a leaked access secret must not
// allow forging refresh tokens and vice versa.
type Config struct {
	// Issuer is the value set in the "iss" claim of both token families.
	Issuer string

	// AccessSecret signs short-lived access tokens.
	AccessSecret []byte

	// RefreshSecret signs long-lived refresh tokens.
	RefreshSecret []byte

	// AccessTTL defines the lifetime of access tokens (minutes-scale).
	AccessTTL time.Duration

	// RefreshTTL defines the lifetime of refresh tokens (days-scale).
	RefreshTTL time.Duration

	// ClockSkew defines the allowed time skew during verification.
	ClockSkew time.Duration
}

// DefaultConfig returns defaults suitable for development.
// Secrets are required and have no default.
func DefaultConfig() Config {
	return Config{
		Issuer:     "taskhub",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
		ClockSkew:  30 * time.Second,
	}
}

// LoadConfigFromEnv loads token configuration from environment variables.
//
// Required:
//   - TASKHUB_AUTH_ACCESS_SECRET  (>= 32 bytes)
//   - TASKHUB_AUTH_REFRESH_SECRET (>= 32 bytes, distinct from the access secret)
//
// Optional (durations must be valid Go duration strings):
//   - TASKHUB_AUTH_ISSUER
//   - TASKHUB_AUTH_ACCESS_TTL
//   - TASKHUB_AUTH_REFRESH_TTL
//   - TASKHUB_AUTH_CLOCK_SKEW
//
// Returns ErrConfig if configuration is invalid.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("TASKHUB_AUTH_ISSUER"); v != "" {
		cfg.Issuer = v
	}

	if v := os.Getenv("TASKHUB_AUTH_ACCESS_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, ErrConfig
		}
		cfg.AccessTTL = d
	}

	if v := os.Getenv("TASKHUB_AUTH_REFRESH_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, ErrConfig
		}
		cfg.RefreshTTL = d
	}

	if v := os.Getenv("TASKHUB_AUTH_CLOCK_SKEW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, ErrConfig
		}
		cfg.ClockSkew = d
	}

	cfg.AccessSecret = []byte(os.Getenv("TASKHUB_AUTH_ACCESS_SECRET"))
	cfg.RefreshSecret = []byte(os.Getenv("TASKHUB_AUTH_REFRESH_SECRET"))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if len(c.AccessSecret) < minSecretBytes || len(c.RefreshSecret) < minSecretBytes {
		return ErrConfig
	}
	if string(c.AccessSecret) == string(c.RefreshSecret) {
		return ErrConfig
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 || c.ClockSkew < 0 {
		return ErrConfig
	}

	// Invariant: refresh tokens outlive access tokens.
	if c.RefreshTTL <= c.AccessTTL {
		return ErrConfig
	}

	return nil
}
