package session

import (
	"os"
	"strings"
)

const minHashKeyBytes = 32

// Config defines runtime configuration for the session core beyond what the
// token issuer and hasher carry themselves.
type Config struct {
	// TokenHashKey keys the HMAC-SHA256 digest of refresh tokens at rest.
	// When empty, plain SHA-256 is used (dev fallback); production should
	// always set it so a leaked database reveals nothing usable.
	TokenHashKey []byte
}

// LoadConfigFromEnv loads session configuration from environment variables.
//
// Optional:
//   - TASKHUB_TOKEN_HMAC_KEY (>= 32 bytes when set)
//
// Returns ErrConfig if a provided value is invalid.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config

	if v := strings.TrimSpace(os.Getenv("TASKHUB_TOKEN_HMAC_KEY")); v != "" {
		if len(v) < minHashKeyBytes {
			return Config{}, ErrConfig
		}
		cfg.TokenHashKey = []byte(v)
	}

	return cfg, nil
}
