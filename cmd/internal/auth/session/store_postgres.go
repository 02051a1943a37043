package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store using PostgreSQL (taskhub.refresh_tokens).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed refresh-token store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Create inserts a new non-revoked record.
func (s *PostgresStore) Create(ctx context.Context, rec Record) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO taskhub.refresh_tokens (
			id, user_id, token_hash,
			created_at, expires_at, revoked_at
		) VALUES (
			$1, $2, $3,
			$4, $5, NULL
		)
	`, rec.ID, rec.UserID, rec.TokenHash, rec.CreatedAt, rec.ExpiresAt)
	return err
}

// FindByHash loads a record by token digest; absence is not an error.
func (s *PostgresStore) FindByHash(ctx context.Context, tokenHash string) (Record, bool, error) {
	var rec Record

	err := s.pool.QueryRow(ctx, `
		SELECT
			id, user_id, token_hash,
			created_at, expires_at, revoked_at
		FROM taskhub.refresh_tokens
		WHERE token_hash = $1
	`, tokenHash).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.TokenHash,
		&rec.CreatedAt,
		&rec.ExpiresAt,
		&rec.RevokedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}

	return rec, true, nil
}

// Revoke marks the record revoked. The conditional UPDATE makes the
// revoke-then-check atomic in the database: of two racing callers, only the
// one whose UPDATE hits the non-revoked row observes claimed=true.
func (s *PostgresStore) Revoke(ctx context.Context, tokenHash string, now time.Time) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE taskhub.refresh_tokens
		SET revoked_at = $2
		WHERE token_hash = $1
		  AND revoked_at IS NULL
	`, tokenHash, now)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SweepExpired deletes records past their expiry.
func (s *PostgresStore) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM taskhub.refresh_tokens
		WHERE expires_at <= $1
	`, now)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
