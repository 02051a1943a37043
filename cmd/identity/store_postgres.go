package identity

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
)

// PostgresStore implements Store using PostgreSQL (taskhub.users).
//
// The pgx pool is owned by the caller; this store must NOT close it.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed user store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const pgUniqueViolation = "23505"

// Create inserts a new active user row and returns it with its ULID.
func (s *PostgresStore) Create(ctx context.Context, in CreateUserInput) (User, error) {
	const op = "identity.Create"

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
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

	_, err := s.pool.Exec(ctx, `
		INSERT INTO taskhub.users (
			id, email, password_hash,
			first_name, last_name, is_active,
			created_at, updated_at, last_login_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6,
			$7, $7, NULL
		)
	`, u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.IsActive, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return User{}, ConflictError{Op: op, Field: "email"}
		}
		return User{}, err
	}

	return u, nil
}

// GetByEmail loads a user row by exact email match.
func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.getBy(ctx, "identity.GetByEmail", `WHERE email = $1`, email)
}

// GetByID loads a user row by ID.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (User, error) {
	return s.getBy(ctx, "identity.GetByID", `WHERE id = $1`, id)
}

func (s *PostgresStore) getBy(ctx context.Context, op, where, arg string) (User, error) {
	var u User

	err := s.pool.QueryRow(ctx, `
		SELECT
			id, email, password_hash,
			first_name, last_name, is_active,
			created_at, updated_at, last_login_at
		FROM taskhub.users
	`+where, arg).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastLoginAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, NotFoundError{Op: op, Resource: "user"}
	}
	if err != nil {
		return User{}, err
	}

	return u, nil
}

// Update persists the mutable fields of u and stamps updated_at.
func (s *PostgresStore) Update(ctx context.Context, u User, now time.Time) (User, error) {
	const op = "identity.Update"

	tag, err := s.pool.Exec(ctx, `
		UPDATE taskhub.users
		SET
			password_hash = $2,
			first_name = $3,
			last_name = $4,
			is_active = $5,
			last_login_at = $6,
			updated_at = $7
		WHERE id = $1
	`, u.ID, u.PasswordHash, u.FirstName, u.LastName, u.IsActive, u.LastLoginAt, now)
	if err != nil {
		return User{}, err
	}
	if tag.RowsAffected() == 0 {
		return User{}, NotFoundError{Op: op, Resource: "user"}
	}

	u.UpdatedAt = now
	return u, nil
}
