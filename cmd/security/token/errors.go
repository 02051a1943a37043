package token

import "errors"

// Public, stable errors for callers.
var (
	// ErrTokenExpired is returned when a token verifies but is past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned when signature or structure is wrong.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrConfig is returned for invalid issuer configuration.
	ErrConfig = errors.New("invalid token config")
)
