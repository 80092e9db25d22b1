package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/me/campus/internal/api"
	"github.com/me/campus/internal/logging"
	"github.com/me/campus/pkg/model"
)

func newTestUI(t *testing.T) *UI {
	t.Helper()
	st := setupTestStore(t)
	logger := logging.Discard()
	client := api.NewClient(api.DefaultConfig(), logger)
	return New(st, client, logger, Config{})
}

func signIn(t *testing.T, ui *UI, role model.Role) *model.Session {
	t.Helper()
	sess, err := ui.sessions.CreateSession(context.Background(), "u-1", "Ana", "ana@example.com", role, "tok", time.Time{})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return sess
}

func TestAllowed(t *testing.T) {
	student := &model.Session{Role: model.RoleStudent}
	teacher := &model.Session{Role: model.RoleTeacher}
	assistant := &model.Session{Role: model.RoleAssistant}

	tests := []struct {
		name  string
		sess  *model.Session
		roles []model.Role
		want  bool
	}{
		{name: "nil session", sess: nil, roles: []model.Role{model.RoleStudent}, want: false},
		{name: "student on student page", sess: student, roles: []model.Role{model.RoleStudent}, want: true},
		{name: "student on teacher page", sess: student, roles: []model.Role{model.RoleTeacher}, want: false},
		{name: "teacher on teacher page", sess: teacher, roles: []model.Role{model.RoleTeacher}, want: true},
		{name: "teacher on student page", sess: teacher, roles: []model.Role{model.RoleStudent}, want: false},
		{name: "assistant inherits teacher access", sess: assistant, roles: []model.Role{model.RoleTeacher}, want: true},
		{name: "assistant on student page", sess: assistant, roles: []model.Role{model.RoleStudent}, want: false},
		{name: "assistant listed explicitly", sess: assistant, roles: []model.Role{model.RoleAssistant}, want: true},
		{name: "teacher passes assistant restriction", sess: teacher, roles: []model.Role{model.RoleAssistant}, want: true},
		{name: "no roles means any signed-in user", sess: student, roles: nil, want: true},
		{name: "multiple roles", sess: student, roles: []model.Role{model.RoleTeacher, model.RoleStudent}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.sess, tt.roles...); got != tt.want {
				t.Errorf("Allowed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuthMiddleware_RedirectsAnonymous(t *testing.T) {
	ui := newTestUI(t)

	handler := ui.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	req := httptest.NewRequest("GET", "/courses/c1/exams", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if loc != "/auth?from=%2Fcourses%2Fc1%2Fexams" {
		t.Errorf("redirect = %q, want auth page with from param", loc)
	}
}

func TestAuthMiddleware_PassesValidSession(t *testing.T) {
	ui := newTestUI(t)
	sess := signIn(t, ui, model.RoleStudent)

	var got *model.Session
	handler := ui.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got == nil {
		t.Fatal("expected session in context")
	}
	if got.ID != sess.ID {
		t.Errorf("session ID = %q, want %q", got.ID, sess.ID)
	}
}

func TestRequireRoles_WrongRoleRedirects(t *testing.T) {
	ui := newTestUI(t)

	tests := []struct {
		name string
		role model.Role
		need model.Role
		path string
	}{
		{name: "student on teacher page", role: model.RoleStudent, need: model.RoleTeacher, path: "/teach/review"},
		{name: "teacher on student page", role: model.RoleTeacher, need: model.RoleStudent, path: "/courses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := signIn(t, ui, tt.role)

			handler := ui.AuthMiddleware(ui.RequireRoles(tt.need)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("restricted page must not render for the wrong role")
			})))

			req := httptest.NewRequest("GET", tt.path, nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", rec.Code)
			}
			loc := rec.Header().Get("Location")
			if want := "/auth?from=" + url.QueryEscape(tt.path); loc != want {
				t.Errorf("redirect = %q, want %q", loc, want)
			}
		})
	}
}

func TestRequireRoles_AssistantReachesTeacherPages(t *testing.T) {
	ui := newTestUI(t)
	sess := signIn(t, ui, model.RoleAssistant)

	ran := false
	handler := ui.AuthMiddleware(ui.RequireRoles(model.RoleTeacher)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	})))

	req := httptest.NewRequest("GET", "/teach/review", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !ran {
		t.Error("assistant should reach teacher pages")
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	ui := newTestUI(t)

	var got *model.Session
	handler := ui.OptionalAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// Anonymous request still reaches the handler.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got != nil {
		t.Error("expected nil session for anonymous request")
	}

	// Signed-in request carries the session.
	sess := signIn(t, ui, model.RoleStudent)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if got == nil || got.ID != sess.ID {
		t.Error("expected session in context for signed-in request")
	}
}
