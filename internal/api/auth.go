package api

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/me/campus/pkg/model"
)

// aspnetRoleClaim is the long-form role claim URI emitted by ASP.NET
// identity backends alongside (or instead of) the short "role" claim.
const aspnetRoleClaim = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"

// LoginRequest is the credentials payload for POST /api/Account/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login. Role is
// optional; when absent the role is read from the token claims.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role,omitempty"`
	Name  string `json:"name,omitempty"`
	ID    string `json:"id,omitempty"`
}

// RegisterRequest is the payload for POST /api/Account/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates against the backend and returns the issued token
// plus the caller's role. The backend owns the credential check; a 401
// here means bad credentials, not a missing token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.post(ctx, "account.login", "/api/Account/login", LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Role == "" {
		if role, ok := RoleFromToken(resp.Token); ok {
			resp.Role = string(role)
		}
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.post(ctx, "account.register", "/api/Account/register", req, nil)
}

// RoleFromToken extracts the role claim from a JWT without verifying
// the signature. Verification belongs to the backend that issued the
// token; here the claim only selects which dashboard to render, and
// every privileged action is re-checked server-side when the token is
// presented.
func RoleFromToken(token string) (model.Role, bool) {
	claims, err := parseClaims(token)
	if err != nil {
		return "", false
	}
	for _, key := range []string{"role", aspnetRoleClaim} {
		if v, ok := claims[key]; ok {
			if s, ok := v.(string); ok {
				if role, ok := model.ParseRole(s); ok {
					return role, true
				}
			}
		}
	}
	return "", false
}

// TokenExpiry returns the exp claim as a time, or the zero time when
// the token carries no expiry.
func TokenExpiry(token string) time.Time {
	claims, err := parseClaims(token)
	if err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// SubjectFromToken returns the sub (or nameid) claim, used as the
// stable user ID for per-session state.
func SubjectFromToken(token string) string {
	claims, err := parseClaims(token)
	if err != nil {
		return ""
	}
	for _, key := range []string{"sub", "nameid"} {
		if s, ok := claims[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// parseClaims decodes the token's claims without signature verification.
func parseClaims(token string) (jwt.MapClaims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
