package ui

import (
	"context"
	"net/http"
	"net/url"

	"github.com/me/campus/pkg/model"
)

// Context keys for session data.
type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// SessionFromContext retrieves the session from the request context.
func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// Allowed reports whether a session may enter a page restricted to the
// given roles. A nil session is never allowed. Roles compare by their
// effective role, so an Assistant passes any Teacher restriction
// without being listed.
func Allowed(sess *model.Session, roles ...model.Role) bool {
	if sess == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	effective := model.EffectiveRole(sess.Role)
	for _, role := range roles {
		if effective == model.EffectiveRole(role) {
			return true
		}
	}
	return false
}

// AuthMiddleware validates the session and adds it to the request context.
// Anonymous visitors are sent to the auth page with the page they asked
// for in the from parameter.
func (ui *UI) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := ui.sessions.GetSessionFromRequest(r)
		if err != nil {
			ui.logger.Error("session lookup failed", "error", err)
			redirectToAuth(w, r)
			return
		}

		if sess == nil {
			redirectToAuth(w, r)
			return
		}

		// Add session to context.
		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles restricts a route subtree to the given roles.
// Must be used after AuthMiddleware. Every deny, wrong role included,
// goes back to the auth page.
func (ui *UI) RequireRoles(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if sess == nil {
				redirectToAuth(w, r)
				return
			}

			if !Allowed(sess, roles...) {
				ui.logger.Warn("role denied", "path", r.URL.Path, "role", sess.Role)
				redirectToAuth(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuthMiddleware adds the session to context if available but doesn't require it.
func (ui *UI) OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := ui.sessions.GetSessionFromRequest(r)
		if sess != nil {
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// redirectToAuth sends the visitor to the auth page, carrying the
// requested path in the from parameter.
func redirectToAuth(w http.ResponseWriter, r *http.Request) {
	target := "/auth"
	if r.URL.Path != "" && r.URL.Path != "/" {
		target += "?from=" + url.QueryEscape(r.URL.Path)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
