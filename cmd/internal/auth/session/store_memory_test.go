package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_CreateAndFind(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	rec := Record{
		ID:        "rec-1",
		UserID:    "user-1",
		TokenHash: "hash-1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := s.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, found, err := s.FindByHash(ctx, "hash-1")
	if err != nil {
		t.Fatalf("FindByHash: %v", err)
	}
	if !found || got.ID != "rec-1" {
		t.Fatalf("expected record, got found=%v rec=%+v", found, got)
	}

	_, found, err = s.FindByHash(ctx, "absent")
	if err != nil {
		t.Fatalf("FindByHash absent: %v", err)
	}
	if found {
		t.Fatalf("absence must not be found")
	}
}

func TestMemoryStore_RevokeClaimsOnce(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.Create(ctx, Record{ID: "rec-1", TokenHash: "hash-1", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	claimed, err := s.Revoke(ctx, "hash-1", now)
	if err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if !claimed {
		t.Fatalf("first revoke must claim")
	}

	claimed, err = s.Revoke(ctx, "hash-1", now)
	if err != nil {
		t.Fatalf("second Revoke: %v", err)
	}
	if claimed {
		t.Fatalf("second revoke must not claim")
	}

	// Absent tokens are not an error either.
	claimed, err = s.Revoke(ctx, "absent", now)
	if err != nil || claimed {
		t.Fatalf("absent revoke: claimed=%v err=%v", claimed, err)
	}

	rec, _, err := s.FindByHash(ctx, "hash-1")
	if err != nil {
		t.Fatalf("FindByHash: %v", err)
	}
	if !rec.Revoked() {
		t.Fatalf("expected revoked record")
	}
}

func TestMemoryStore_SweepRespectsValidityWindow(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.Create(ctx, Record{ID: "old", TokenHash: "old", ExpiresAt: now.Add(-time.Minute)}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create(ctx, Record{ID: "live", TokenHash: "live", ExpiresAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := s.SweepExpired(ctx, now)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	if _, found, _ := s.FindByHash(ctx, "old"); found {
		t.Fatalf("expired record survived sweep")
	}
	if _, found, _ := s.FindByHash(ctx, "live"); !found {
		t.Fatalf("live record removed by sweep")
	}
}
