package model

import "time"

// Session represents an authenticated user session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"-"` // backend bearer token (not exposed via JSON)
	TokenExp  time.Time `json:"-"` // token expiration, zero when the token carries none
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsTokenExpired reports whether the backend token has expired.
// A zero TokenExp means the token carried no expiry claim and is
// treated as non-expiring (the backend still rejects stale tokens
// server-side).
func (s *Session) IsTokenExpired() bool {
	return !s.TokenExp.IsZero() && time.Now().After(s.TokenExp)
}

// CanTeach reports whether the session's effective role is Teacher.
// Assistants inherit Teacher access.
func (s *Session) CanTeach() bool {
	return EffectiveRole(s.Role) == RoleTeacher
}

// IsStudent reports whether the session's effective role is Student.
func (s *Session) IsStudent() bool {
	return EffectiveRole(s.Role) == RoleStudent
}
