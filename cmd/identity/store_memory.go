package identity

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// MemoryStore is the in-memory Store variant for dev and tests.
// Email uniqueness is enforced by the byEmail map key (exact match).
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string // email -> user id
}

// NewMemoryStore constructs an empty in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
	}
}

// Create stores a new active user.
func (s *MemoryStore) Create(ctx context.Context, in CreateUserInput) (User, error) {
	const op = "identity.Create"

	if err := ctx.Err(); err != nil {
		return User{}, err
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[in.Email]; exists {
		return User{}, ConflictError{Op: op, Field: "email"}
	}

	u := User{
		ID:           ulid.Make().String(),
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID

	return u, nil
}

// GetByEmail loads a user by exact email.
func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return User{}, NotFoundError{Op: "identity.GetByEmail", Resource: "user"}
	}
	return s.byID[id], nil
}

// GetByID loads a user by ID.
func (s *MemoryStore) GetByID(ctx context.Context, id string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return User{}, NotFoundError{Op: "identity.GetByID", Resource: "user"}
	}
	return u, nil
}

// Update overwrites the mutable fields of the stored user.
func (s *MemoryStore) Update(ctx context.Context, u User, now time.Time) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.byID[u.ID]
	if !ok {
		return User{}, NotFoundError{Op: "identity.Update", Resource: "user"}
	}

	cur.PasswordHash = u.PasswordHash
	cur.FirstName = u.FirstName
	cur.LastName = u.LastName
	cur.IsActive = u.IsActive
	cur.LastLoginAt = u.LastLoginAt
	cur.UpdatedAt = now

	s.byID[cur.ID] = cur
	return cur, nil
}
