package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Refresh tokens at rest:
// the session store never persists a refresh-token value in plaintext, only a
// stable 64-char hex digest. These helpers are the single source of truth for
// how that digest is computed.

// HashSHA256Hex returns a SHA-256 hex digest of s.
func HashSHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashHMACSHA256Hex returns an HMAC-SHA256 hex digest of s using key.
// Preferred over plain SHA-256 whenever a server-side key is configured:
// a leaked database then reveals nothing usable without the key.
func HashHMACSHA256Hex(s string, key []byte) string {
	m := hmac.New(sha256.New, key)
	_, _ = m.Write([]byte(s))
	return hex.EncodeToString(m.Sum(nil))
}
