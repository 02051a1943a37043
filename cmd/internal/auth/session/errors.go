package session

import (
	"errors"
	"fmt"
	"strings"
)

// The closed error taxonomy of the auth core. Every failure path returns
// exactly one of these kinds; callers dispatch with errors.Is, never by
// matching message text.
var (
	// ErrValidation is returned for bad input shape or strength.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when registering an already-registered email.
	ErrConflict = errors.New("email already registered")

	// ErrInvalidCredentials is returned for a bad login or an
	// invalid/expired/revoked refresh token. It is deliberately generic:
	// unknown email and wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned for a bad or expired access token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned for a profile lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrStorage is returned when a collaborator fails. The core never
	// retries; the caller may.
	ErrStorage = errors.New("storage failure")

	// ErrConfig is returned for invalid configuration.
	ErrConfig = errors.New("invalid config")
)

// ValidationError carries one reason per unmet rule.
type ValidationError struct {
	Reasons []string
}

func (e ValidationError) Error() string {
	if len(e.Reasons) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Reasons, "; "))
}

func (e ValidationError) Unwrap() error { return ErrValidation }

// StorageError wraps a collaborator failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, ErrStorage)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrStorage, e.Err)
}

func (e StorageError) Unwrap() error { return ErrStorage }
