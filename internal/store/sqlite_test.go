package store

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/me/campus/pkg/model"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleSession(id string) *model.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &model.Session{
		ID:        id,
		UserID:    "u-1",
		Name:      "Ana",
		Email:     "ana@example.com",
		Role:      model.RoleTeacher,
		Token:     "tok-abc",
		TokenExp:  now.Add(2 * time.Hour),
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

func TestSessionCRUD(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	sess := sampleSession("sess-1")
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := st.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got == nil {
		t.Fatal("GetSession returned nil for existing session")
	}
	if got.UserID != sess.UserID || got.Email != sess.Email || got.Role != model.RoleTeacher {
		t.Errorf("session fields mismatch: %+v", got)
	}
	if got.Token != "tok-abc" {
		t.Errorf("token = %q, want tok-abc", got.Token)
	}
	if !got.TokenExp.Equal(sess.TokenExp) {
		t.Errorf("token_exp = %v, want %v", got.TokenExp, sess.TokenExp)
	}

	if err := st.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	got, err = st.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("GetSession after delete: %v", err)
	}
	if got != nil {
		t.Error("expected nil after delete")
	}
}

func TestGetSession_Missing(t *testing.T) {
	st := testStore(t)

	got, err := st.GetSession(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got != nil {
		t.Error("expected nil for missing session, no error")
	}
}

func TestSession_ZeroTokenExpRoundTrip(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	sess := sampleSession("sess-1")
	sess.TokenExp = time.Time{}
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	got, err := st.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if !got.TokenExp.IsZero() {
		t.Errorf("token_exp = %v, want zero time", got.TokenExp)
	}
	if got.IsTokenExpired() {
		t.Error("session without expiry claim must not read as expired")
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	expired := sampleSession("sess-old")
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	live := sampleSession("sess-new")

	if err := st.CreateSession(ctx, expired); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if err := st.CreateSession(ctx, live); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	n, err := st.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d sessions, want 1", n)
	}

	if got, _ := st.GetSession(ctx, "sess-old"); got != nil {
		t.Error("expired session survived the sweep")
	}
	if got, _ := st.GetSession(ctx, "sess-new"); got == nil {
		t.Error("live session was swept")
	}
}

func TestDeleteSessionsByUserID(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	a := sampleSession("sess-a")
	b := sampleSession("sess-b")
	other := sampleSession("sess-c")
	other.UserID = "u-2"

	for _, s := range []*model.Session{a, b, other} {
		if err := st.CreateSession(ctx, s); err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
	}

	n, err := st.DeleteSessionsByUserID(ctx, "u-1")
	if err != nil {
		t.Fatalf("DeleteSessionsByUserID: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d sessions, want 2", n)
	}
	if got, _ := st.GetSession(ctx, "sess-c"); got == nil {
		t.Error("other user's session was deleted")
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	st := testStore(t)
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}
