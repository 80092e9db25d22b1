package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/me/campus/internal/api"
	"github.com/me/campus/internal/logging"
	"github.com/me/campus/pkg/model"
)

// fakeBackend is a minimal grading backend for end-to-end flow tests.
type fakeBackend struct {
	*httptest.Server
	failSubmits atomic.Bool
	submits     atomic.Int64
	lastAnswers map[string]int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}

	exam := model.Exam{
		ID:          "e1",
		CourseID:    "c1",
		Title:       "Midterm",
		Duration:    30,
		TotalPoints: 10,
		Questions: []model.Question{
			{ID: "q1", Text: "2+2?", Options: []string{"3", "4", "5", "6"}, Points: 5},
			{ID: "q2", Text: "3*3?", Options: []string{"6", "7", "8", "9"}, Points: 5},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/Account/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(api.LoginResponse{Token: "tok-student", Role: "Student", Name: "Ana", ID: "u-1"})
	})
	mux.HandleFunc("GET /api/Course/c1/exams/e1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(exam)
	})
	mux.HandleFunc("POST /api/Course/c1/exams/e1/submit", func(w http.ResponseWriter, r *http.Request) {
		fb.submits.Add(1)
		if fb.failSubmits.Load() {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"message": "grading service unavailable"})
			return
		}
		var req struct {
			Answers map[string]int `json:"answers"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		fb.lastAnswers = req.Answers
		json.NewEncoder(w).Encode(model.SubmitResult{Score: 5, TotalPoints: 10, Passed: true})
	})

	fb.Server = httptest.NewServer(mux)
	t.Cleanup(fb.Close)
	return fb
}

func newFlowServer(t *testing.T, backend *fakeBackend) *httptest.Server {
	t.Helper()
	st := setupTestStore(t)
	logger := logging.Discard()

	cfg := api.DefaultConfig()
	cfg.BaseURL = backend.URL
	cfg.MaxRetries = 0
	cfg.RetryDelay = time.Millisecond
	client := api.NewClient(cfg, logger)

	ui := New(st, client, logger, Config{})
	r := chi.NewRouter()
	ui.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// flowClient is an http.Client with a cookie jar that does not follow
// redirects, so tests can assert on Location headers.
func flowClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, c *http.Client, target string, form url.Values) *http.Response {
	t.Helper()
	resp, err := c.Post(target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST %s: %v", target, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestExamFlow_EndToEnd(t *testing.T) {
	backend := newFakeBackend(t)
	srv := newFlowServer(t, backend)
	c := flowClient(t)

	// Sign in.
	resp := postForm(t, c, srv.URL+"/auth/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"secret"},
	})
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Fatalf("login redirect = %q, want /dashboard", loc)
	}

	// Start the exam.
	resp = postForm(t, c, srv.URL+"/courses/c1/exams/e1/start", nil)
	if loc := resp.Header.Get("Location"); loc != "/exam" {
		t.Fatalf("start redirect = %q, want /exam", loc)
	}

	// Exam page renders with the countdown.
	resp, err := c.Get(srv.URL + "/exam")
	if err != nil {
		t.Fatalf("GET /exam: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "Midterm") {
		t.Error("exam page missing title")
	}
	if !strings.Contains(string(body), "30:00") {
		t.Error("exam page missing initial countdown")
	}

	// Answer the first question, then change the answer.
	postForm(t, c, srv.URL+"/exam/answer", url.Values{"question": {"q1"}, "option": {"2"}})
	postForm(t, c, srv.URL+"/exam/answer", url.Values{"question": {"q1"}, "option": {"1"}})

	// Open the confirmation dialog; the backend is down, so the first
	// confirm fails and the attempt survives.
	backend.failSubmits.Store(true)
	postForm(t, c, srv.URL+"/exam/submit", nil)
	resp = postForm(t, c, srv.URL+"/exam/submit/confirm", nil)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "Submission failed") {
		t.Fatal("expected failure banner after backend error")
	}
	if !strings.Contains(string(body), "Try again") {
		t.Error("expected retry button after failed submit")
	}

	// Retry once the backend recovers.
	backend.failSubmits.Store(false)
	resp = postForm(t, c, srv.URL+"/exam/submit/confirm", nil)
	if loc := resp.Header.Get("Location"); loc != "/exam/result" {
		t.Fatalf("confirm redirect = %q, want /exam/result", loc)
	}

	// Only the answered question reached the backend, with the final
	// choice.
	if len(backend.lastAnswers) != 1 {
		t.Errorf("backend got %d answers, want 1", len(backend.lastAnswers))
	}
	if backend.lastAnswers["q1"] != 1 {
		t.Errorf("backend got q1=%d, want 1", backend.lastAnswers["q1"])
	}

	// Result page shows the grade.
	resp, err = c.Get(srv.URL + "/exam/result")
	if err != nil {
		t.Fatalf("GET /exam/result: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "5 / 10") {
		t.Error("result page missing score")
	}
	if !strings.Contains(string(body), "You passed") {
		t.Error("result page missing pass banner")
	}

	// Finishing drops the attempt and returns to the exam listing.
	resp = postForm(t, c, srv.URL+"/exam/finish", nil)
	if loc := resp.Header.Get("Location"); loc != "/courses/c1/exams" {
		t.Fatalf("finish redirect = %q, want exam listing", loc)
	}
	resp, _ = c.Get(srv.URL + "/exam")
	if loc := resp.Header.Get("Location"); loc != "/courses" {
		t.Errorf("exam page after finish = %q, want redirect to /courses", loc)
	}
	resp.Body.Close()
}

func TestExamFlow_ReloadResumesAttempt(t *testing.T) {
	backend := newFakeBackend(t)
	srv := newFlowServer(t, backend)
	c := flowClient(t)

	postForm(t, c, srv.URL+"/auth/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"secret"},
	})
	postForm(t, c, srv.URL+"/exam/answer", nil) // no attempt yet: 409
	postForm(t, c, srv.URL+"/courses/c1/exams/e1/start", nil)
	postForm(t, c, srv.URL+"/exam/answer", url.Values{"question": {"q2"}, "option": {"3"}})

	// Starting the same exam again (reload of the start form) must not
	// wipe the recorded answer.
	postForm(t, c, srv.URL+"/courses/c1/exams/e1/start", nil)

	resp, err := c.Get(srv.URL + "/exam")
	if err != nil {
		t.Fatalf("GET /exam: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "1 / 2 answered") {
		t.Error("resumed attempt lost its answer")
	}
}

func TestLoginFlow_BadCredentials(t *testing.T) {
	backend := newFakeBackend(t)
	srv := newFlowServer(t, backend)
	c := flowClient(t)

	resp := postForm(t, c, srv.URL+"/auth/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"wrong"},
	})
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/auth?error=") {
		t.Fatalf("redirect = %q, want auth page with error", loc)
	}
	if !strings.Contains(loc, "Invalid") {
		t.Errorf("redirect %q missing backend message", loc)
	}
}
