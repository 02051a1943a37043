package identity

import (
	"context"
	"time"
)

// User is taskhub's canonical security principal.
// PasswordHash only ever holds the Argon2id digest, never plaintext.
type User struct {
	ID           string
	Email        string
	PasswordHash string

	FirstName string
	LastName  string

	IsActive bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// CreateUserInput describes a registration request reaching the store.
// The password is already hashed by the caller.
type CreateUserInput struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Now          time.Time
}

// Store is the user persistence boundary.
//
// Email uniqueness is a case-sensitive exact match and is enforced by the
// store (unique index / map key), not by read-then-write in callers.
type Store interface {
	// Create persists a new active user and returns it with its assigned ID.
	// A duplicate email yields a ConflictError.
	Create(ctx context.Context, in CreateUserInput) (User, error)

	// GetByEmail loads a user by exact email. Missing rows yield ErrNotFound.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID loads a user by ID. Missing rows yield ErrNotFound.
	GetByID(ctx context.Context, id string) (User, error)

	// Update persists the mutable fields of u (names, password hash, active
	// flag, last-login) and stamps UpdatedAt. Missing rows yield ErrNotFound.
	Update(ctx context.Context, u User, now time.Time) (User, error)
}
