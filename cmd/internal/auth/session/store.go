package session

import (
	"context"
	"time"
)

// Record mirrors one persisted refresh token.
// TokenHash is the at-rest digest of the token value; the plain value is
// never stored server-side.
type Record struct {
	ID        string
	UserID    string
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Revoked reports whether the record has been revoked.
func (r Record) Revoked() bool { return r.RevokedAt != nil }

// Store abstracts persistence for refresh-token state.
//
// Two variants exist (Postgres, in-memory); the variant is selected at
// process start and injected into the Service, which never branches on
// storage kind.
type Store interface {
	// Create persists a new non-revoked record.
	Create(ctx context.Context, rec Record) error

	// FindByHash looks a record up by its token digest.
	// Absence is a valid outcome: (zero Record, false, nil).
	FindByHash(ctx context.Context, tokenHash string) (Record, bool, error)

	// Revoke marks the record revoked. It is idempotent: revoking an absent
	// or already-revoked record is not an error. claimed is true iff THIS
	// call performed the transition; when two refreshes race on one token,
	// exactly one observes claimed=true.
	Revoke(ctx context.Context, tokenHash string, now time.Time) (claimed bool, err error)

	// SweepExpired removes records whose expiry has passed. It never removes
	// a record still within its validity window and is safe to run
	// concurrently with reads.
	SweepExpired(ctx context.Context, now time.Time) (removed int, err error)
}
