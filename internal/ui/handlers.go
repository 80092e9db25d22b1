package ui

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/me/campus/internal/api"
	"github.com/me/campus/internal/exam"
	"github.com/me/campus/internal/store"
	"github.com/me/campus/pkg/model"
)

// UI handles the web user interface. All course, exam, and payment data
// comes from the backend API; the UI owns only sessions and live exam
// attempts.
type UI struct {
	store     store.Store
	sessions  *SessionManager
	api       *api.Client
	attempts  *exam.Manager
	validate  *validator.Validate
	logger    *slog.Logger
	startTime time.Time
	secure    bool // Use secure cookies (HTTPS)
}

// Config holds UI configuration.
type Config struct {
	Secure bool // Use secure cookies for HTTPS
}

// New creates a new UI handler.
func New(st store.Store, client *api.Client, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		store:     st,
		sessions:  NewSessionManager(st),
		api:       client,
		attempts:  exam.NewManager(nil),
		validate:  validator.New(),
		logger:    logger.With("component", "ui"),
		startTime: time.Now(),
		secure:    cfg.Secure,
	}
}

// Sessions exposes the session manager for background cleanup.
func (ui *UI) Sessions() *SessionManager {
	return ui.sessions
}

// apiFor returns the API client bound to the session's token.
func (ui *UI) apiFor(sess *model.Session) *api.Client {
	return ui.api.WithToken(sess.Token)
}

// HandleLanding renders the marketing page. Signed-in users get their
// dashboard link in the navigation instead of the sign-in button.
func (ui *UI) HandleLanding(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	data := map[string]any{
		"Title":   "Campus - Learn Anywhere",
		"Session": sess,
	}
	ui.render(w, "landing", data)
}

// HandlePricing renders the subscription plans.
func (ui *UI) HandlePricing(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	plans, err := ui.api.ListPlans(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load plans", err)
		return
	}

	data := map[string]any{
		"Title":   "Pricing - Campus",
		"Session": sess,
		"Plans":   plans,
		"Error":   r.URL.Query().Get("error"),
	}
	ui.render(w, "pricing", data)
}

// HandleSubscribe purchases a plan for the signed-in student.
func (ui *UI) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/pricing?error=Invalid+request", http.StatusSeeOther)
		return
	}

	planID := r.FormValue("plan")
	code := strings.TrimSpace(r.FormValue("discount"))
	if planID == "" {
		http.Redirect(w, r, "/pricing?error=Choose+a+plan", http.StatusSeeOther)
		return
	}

	if _, err := ui.apiFor(sess).Subscribe(r.Context(), planID, code); err != nil {
		ui.logger.Warn("subscribe failed", "plan", planID, "error", err)
		http.Redirect(w, r, "/pricing?error="+url.QueryEscape(api.UserMessage(err)), http.StatusSeeOther)
		return
	}

	ui.logger.Info("plan purchased", "plan", planID, "user", sess.UserID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleDiscountCheck validates a discount code as it is typed and
// returns the adjusted price fragment for the plan card.
func (ui *UI) HandleDiscountCheck(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	planID := r.FormValue("plan")
	code := strings.TrimSpace(r.FormValue("discount"))
	if planID == "" || code == "" {
		ui.renderPartial(w, "partial_discount", map[string]any{})
		return
	}

	result, err := ui.apiFor(sess).CheckDiscount(r.Context(), planID, code)
	if err != nil {
		ui.renderPartial(w, "partial_discount", map[string]any{"Error": api.UserMessage(err)})
		return
	}
	ui.renderPartial(w, "partial_discount", map[string]any{"Result": result})
}

// HandleAuth renders the combined sign-in and register page.
func (ui *UI) HandleAuth(w http.ResponseWriter, r *http.Request) {
	// If already signed in, go straight to the dashboard.
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title": "Sign in - Campus",
		"Error": r.URL.Query().Get("error"),
		"Tab":   r.URL.Query().Get("tab"),
		"From":  r.URL.Query().Get("from"),
	}
	ui.render(w, "auth", data)
}

// HandleLoginPost processes the sign-in form.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/auth?error=Invalid+request", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		http.Redirect(w, r, "/auth?error=Email+and+password+required", http.StatusSeeOther)
		return
	}

	resp, err := ui.api.Login(r.Context(), email, password)
	if err != nil {
		ui.logger.Warn("login failed", "email", email, "error", err)
		http.Redirect(w, r, "/auth?error="+url.QueryEscape(api.UserMessage(err)), http.StatusSeeOther)
		return
	}

	role, ok := model.ParseRole(resp.Role)
	if !ok {
		// The backend returned no usable role; fall back to the token
		// claims before giving up.
		if role, ok = api.RoleFromToken(resp.Token); !ok {
			ui.logger.Error("login returned no role", "email", email)
			http.Redirect(w, r, "/auth?error=Account+has+no+role", http.StatusSeeOther)
			return
		}
	}

	userID := resp.ID
	if userID == "" {
		userID = api.SubjectFromToken(resp.Token)
	}
	if userID == "" {
		userID = email
	}
	name := resp.Name
	if name == "" {
		name = email
	}

	// A fresh login replaces any earlier browser session for the same
	// account. Live attempts die with their session.
	if n, err := ui.store.DeleteSessionsByUserID(r.Context(), userID); err == nil && n > 0 {
		ui.logger.Info("previous sessions revoked", "user", userID, "count", n)
	}

	sess, err := ui.sessions.CreateSession(r.Context(), userID, name, email, role, resp.Token, api.TokenExpiry(resp.Token))
	if err != nil {
		ui.logger.Error("create session failed", "error", err)
		http.Redirect(w, r, "/auth?error=Session+creation+failed", http.StatusSeeOther)
		return
	}

	SetSessionCookie(w, sess, ui.secure)

	ui.logger.Info("user signed in", "email", email, "role", role, "session", sess.ID)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// HandleRegisterPost processes the register form and signs the new
// account in.
func (ui *UI) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/auth?tab=register&error=Invalid+request", http.StatusSeeOther)
		return
	}

	req := api.RegisterRequest{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Redirect(w, r, "/auth?tab=register&error=All+fields+required", http.StatusSeeOther)
		return
	}
	if _, ok := model.ParseRole(req.Role); !ok {
		req.Role = string(model.RoleStudent)
	}

	if err := ui.api.Register(r.Context(), req); err != nil {
		ui.logger.Warn("register failed", "email", req.Email, "error", err)
		http.Redirect(w, r, "/auth?tab=register&error="+url.QueryEscape(api.UserMessage(err)), http.StatusSeeOther)
		return
	}

	ui.logger.Info("account registered", "email", req.Email)

	// Sign the fresh account in with the same credentials.
	r.Form.Set("email", req.Email)
	r.Form.Set("password", req.Password)
	ui.HandleLoginPost(w, r)
}

// HandleLogout clears the session and any live exam attempt.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		_ = ui.sessions.DeleteSession(r.Context(), sess.ID)
		ui.attempts.DropSession(sess.ID)
		ui.logger.Info("user signed out", "email", sess.Email, "session", sess.ID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDashboard sends each role to its own dashboard.
func (ui *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess.CanTeach() {
		ui.renderTeacherDashboard(w, r, sess)
		return
	}
	ui.renderStudentDashboard(w, r, sess)
}

// --- Render helpers ---

func (ui *UI) render(w http.ResponseWriter, template string, data map[string]any) {
	ui.renderStatus(w, http.StatusOK, template, data)
}

func (ui *UI) renderStatus(w http.ResponseWriter, status int, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (ui *UI) renderError(w http.ResponseWriter, message string, err error) {
	ui.logger.Error(message, "error", err)
	data := map[string]any{
		"Title":   "Error - Campus",
		"Message": message,
		"Detail":  api.UserMessage(err),
	}
	ui.renderStatus(w, http.StatusInternalServerError, "error", data)
}

func (ui *UI) renderNotFound(w http.ResponseWriter, message string) {
	data := map[string]any{
		"Title":   "Not Found - Campus",
		"Message": message,
	}
	ui.renderStatus(w, http.StatusNotFound, "error", data)
}

// renderPartial writes a bare fragment without the layout, for
// HTMX swaps.
func (ui *UI) renderPartial(w http.ResponseWriter, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderPartialTemplate(&buf, name, data); err != nil {
		ui.logger.Error("partial render failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	buf.WriteTo(w)
}
