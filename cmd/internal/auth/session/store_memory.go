package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-memory Store variant for dev and tests.
// The mutex gives the same first-revoker-wins guarantee the Postgres
// variant gets from its conditional UPDATE.
type MemoryStore struct {
	mu     sync.Mutex
	byHash map[string]Record
}

// NewMemoryStore constructs an empty in-memory refresh-token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byHash: make(map[string]Record)}
}

// Create stores a new non-revoked record.
func (s *MemoryStore) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byHash[rec.TokenHash] = rec
	return nil
}

// FindByHash loads a record by token digest; absence is not an error.
func (s *MemoryStore) FindByHash(ctx context.Context, tokenHash string) (Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byHash[tokenHash]
	return rec, ok, nil
}

// Revoke marks the record revoked; claimed reports whether this call did it.
func (s *MemoryStore) Revoke(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byHash[tokenHash]
	if !ok || rec.RevokedAt != nil {
		return false, nil
	}

	at := now
	rec.RevokedAt = &at
	s.byHash[tokenHash] = rec
	return true, nil
}

// SweepExpired removes records past their expiry.
func (s *MemoryStore) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for hash, rec := range s.byHash {
		if !rec.ExpiresAt.After(now) {
			delete(s.byHash, hash)
			removed++
		}
	}
	return removed, nil
}
