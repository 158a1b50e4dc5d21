package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
	"github.com/adityakumar2809/recipe-app-api/internal/store"
)

func makeTestSession(id, userID, refreshHash string, expiresAt time.Time) *domain.Session {
	now := time.Now().UTC()
	return &domain.Session{
		ID:               id,
		UserID:           userID,
		RefreshTokenHash: refreshHash,
		ExpiresAt:        expiresAt,
		CreatedAt:        now,
		LastSeenAt:       now,
		IPAddress:        "192.0.2.10",
		UserAgent:        "recipe-cli/1.0",
	}
}

func TestCreateAndGetSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-s1", "sess@example.com")

	expires := time.Now().UTC().Add(24 * time.Hour)
	sess := makeTestSession("sess-1", "user-s1", "hash-abc", expires)
	if err := s.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := s.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.UserID != "user-s1" {
		t.Errorf("UserID: got %q, want %q", got.UserID, "user-s1")
	}
	if got.RefreshTokenHash != "hash-abc" {
		t.Errorf("RefreshTokenHash: got %q, want %q", got.RefreshTokenHash, "hash-abc")
	}
	if got.ExpiresAt.Unix() != expires.Unix() {
		t.Errorf("ExpiresAt: got %v, want %v", got.ExpiresAt, expires)
	}
	if got.IPAddress != "192.0.2.10" {
		t.Errorf("IPAddress: got %q, want %q", got.IPAddress, "192.0.2.10")
	}
	if got.UserAgent != "recipe-cli/1.0" {
		t.Errorf("UserAgent: got %q, want %q", got.UserAgent, "recipe-cli/1.0")
	}
}

func TestGetSessionByRefreshToken(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-s2", "sess2@example.com")

	sess := makeTestSession("sess-2", "user-s2", "hash-lookup", time.Now().UTC().Add(time.Hour))
	if err := s.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := s.GetSessionByRefreshToken(ctx, "hash-lookup")
	if err != nil {
		t.Fatalf("GetSessionByRefreshToken: %v", err)
	}
	if got.ID != "sess-2" {
		t.Errorf("ID: got %q, want %q", got.ID, "sess-2")
	}

	if _, err := s.GetSessionByRefreshToken(ctx, "no-such-hash"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown hash, got %v", err)
	}
}

func TestUpdateSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-s3", "sess3@example.com")

	sess := makeTestSession("sess-3", "user-s3", "hash-old", time.Now().UTC().Add(time.Hour))
	if err := s.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	// Rotate the refresh token and extend expiry.
	sess.RefreshTokenHash = "hash-new"
	sess.ExpiresAt = time.Now().UTC().Add(48 * time.Hour)
	sess.Touch()
	if err := s.UpdateSession(ctx, sess); err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}

	got, err := s.GetSession(ctx, "sess-3")
	if err != nil {
		t.Fatalf("GetSession after update: %v", err)
	}
	if got.RefreshTokenHash != "hash-new" {
		t.Errorf("RefreshTokenHash: got %q, want %q", got.RefreshTokenHash, "hash-new")
	}

	// The old hash no longer resolves.
	if _, err := s.GetSessionByRefreshToken(ctx, "hash-old"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for rotated hash, got %v", err)
	}
}

func TestDeleteSession(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-s4", "sess4@example.com")

	sess := makeTestSession("sess-4", "user-s4", "hash-del", time.Now().UTC().Add(time.Hour))
	if err := s.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if err := s.DeleteSession(ctx, "sess-4"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}

	if _, err := s.GetSession(ctx, "sess-4"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing session reports not found.
	if err := s.DeleteSession(ctx, "sess-4"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for double delete, got %v", err)
	}
}

func TestListUserSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-s5", "sess5@example.com")
	insertTestUser(t, s, "user-s6", "sess6@example.com")

	base := time.Now().UTC()
	for i, id := range []string{"sess-5a", "sess-5b", "sess-5c"} {
		sess := makeTestSession(id, "user-s5", "hash-"+id, base.Add(time.Hour))
		sess.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := s.CreateSession(ctx, sess); err != nil {
			t.Fatalf("CreateSession(%s): %v", id, err)
		}
	}
	other := makeTestSession("sess-6a", "user-s6", "hash-other", base.Add(time.Hour))
	if err := s.CreateSession(ctx, other); err != nil {
		t.Fatalf("CreateSession(other): %v", err)
	}

	got, err := s.ListUserSessions(ctx, "user-s5")
	if err != nil {
		t.Fatalf("ListUserSessions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(got))
	}
	// Oldest first.
	for i, want := range []string{"sess-5a", "sess-5b", "sess-5c"} {
		if got[i].ID != want {
			t.Errorf("session[%d]: got %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertTestUser(t, s, "user-s7", "sess7@example.com")

	now := time.Now().UTC()
	expired := makeTestSession("sess-exp", "user-s7", "hash-exp", now.Add(-time.Hour))
	live := makeTestSession("sess-live", "user-s7", "hash-live", now.Add(time.Hour))
	if err := s.CreateSession(ctx, expired); err != nil {
		t.Fatalf("CreateSession(expired): %v", err)
	}
	if err := s.CreateSession(ctx, live); err != nil {
		t.Fatalf("CreateSession(live): %v", err)
	}

	n, err := s.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted session, got %d", n)
	}

	if _, err := s.GetSession(ctx, "sess-exp"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected expired session gone, got %v", err)
	}
	if _, err := s.GetSession(ctx, "sess-live"); err != nil {
		t.Errorf("expected live session kept, got %v", err)
	}
}
