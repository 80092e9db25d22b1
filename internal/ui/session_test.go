package ui

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/me/campus/internal/store"
	"github.com/me/campus/pkg/model"
)

func setupTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := store.NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSessionManager_CreateAndGet(t *testing.T) {
	st := setupTestStore(t)

	sm := NewSessionManager(st)
	ctx := context.Background()

	tokenExp := time.Now().Add(24 * time.Hour)
	sess, err := sm.CreateSession(ctx, "user1", "Ana", "ana@example.com", model.RoleStudent, "test-token", tokenExp)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if sess.ID == "" {
		t.Error("expected session ID to be set")
	}
	if sess.UserID != "user1" {
		t.Errorf("expected UserID 'user1', got %q", sess.UserID)
	}
	if sess.Email != "ana@example.com" {
		t.Errorf("expected Email 'ana@example.com', got %q", sess.Email)
	}
	if sess.Role != model.RoleStudent {
		t.Errorf("expected Role 'Student', got %q", sess.Role)
	}

	retrieved, err := sm.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected session to be found")
	}
	if retrieved.Name != sess.Name {
		t.Errorf("expected Name %q, got %q", sess.Name, retrieved.Name)
	}
}

func TestSessionManager_GetSession_NotFound(t *testing.T) {
	st := setupTestStore(t)

	sm := NewSessionManager(st)

	sess, err := sm.GetSession(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if sess != nil {
		t.Error("expected nil session for nonexistent ID")
	}
}

func TestSessionManager_GetSession_Expired(t *testing.T) {
	st := setupTestStore(t)

	sm := NewSessionManager(st)
	ctx := context.Background()

	sess := &model.Session{
		ID:        "sess_expired",
		UserID:    "user1",
		Name:      "Ana",
		Email:     "ana@example.com",
		Role:      model.RoleStudent,
		Token:     "test-token",
		TokenExp:  time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	retrieved, err := sm.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if retrieved != nil {
		t.Error("expected nil session for expired session")
	}
}

func TestSessionManager_SessionCappedByTokenExpiry(t *testing.T) {
	st := setupTestStore(t)

	sm := NewSessionManager(st)

	tokenExp := time.Now().Add(1 * time.Hour)
	sess, err := sm.CreateSession(context.Background(), "user1", "Ana", "ana@example.com", model.RoleStudent, "tok", tokenExp)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if sess.ExpiresAt.After(tokenExp) {
		t.Errorf("session expiry %v outlives token expiry %v", sess.ExpiresAt, tokenExp)
	}
}

func TestSessionManager_DeleteSession(t *testing.T) {
	st := setupTestStore(t)

	sm := NewSessionManager(st)
	ctx := context.Background()

	sess, err := sm.CreateSession(ctx, "user1", "Ana", "ana@example.com", model.RoleStudent, "tok", time.Time{})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if err := sm.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	retrieved, _ := sm.GetSession(ctx, sess.ID)
	if retrieved != nil {
		t.Error("expected session gone after delete")
	}
}

func TestSetAndClearSessionCookie(t *testing.T) {
	sess := &model.Session{
		ID:        "sess_abc",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	rec := httptest.NewRecorder()
	SetSessionCookie(rec, sess, false)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != "sess_abc" {
		t.Errorf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Error("expected SameSite=Strict")
	}

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec)
	cookies = rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Error("expected clearing cookie with MaxAge -1")
	}
}

func TestGenerateSessionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := generateSessionID()
		if err != nil {
			t.Fatalf("generateSessionID: %v", err)
		}
		if seen[id] {
			t.Fatal("duplicate session ID")
		}
		seen[id] = true
	}
}
