package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/me/campus/internal/api"
	"github.com/me/campus/pkg/model"
)

// teacherBackend fakes the course-review and exam-authoring endpoints.
type teacherBackend struct {
	*httptest.Server
	approved atomic.Int64
	created  atomic.Int64
}

func newTeacherBackend(t *testing.T) *teacherBackend {
	t.Helper()
	tb := &teacherBackend{}

	course := model.Course{
		ID:         "c1",
		Title:      "Algebra",
		Instructor: "Prof. Ruiz",
		Price:      49,
		Status:     model.CoursePending,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/Account/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		role := "Teacher"
		if strings.HasPrefix(req.Email, "assistant") {
			role = "Assistant"
		}
		json.NewEncoder(w).Encode(api.LoginResponse{Token: "tok-teach", Role: role, Name: "Sam", ID: "u-t1"})
	})
	mux.HandleFunc("GET /api/Course", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Course{course})
	})
	mux.HandleFunc("GET /api/Course/c1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(course)
	})
	mux.HandleFunc("PUT /api/Course/c1/approve", func(w http.ResponseWriter, r *http.Request) {
		tb.approved.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/Course/c1/exams", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Exam{})
	})
	mux.HandleFunc("POST /api/Course/c1/exams", func(w http.ResponseWriter, r *http.Request) {
		tb.created.Add(1)
		var draft model.ExamDraft
		json.NewDecoder(r.Body).Decode(&draft)
		json.NewEncoder(w).Encode(model.Exam{ID: "e-new", Title: draft.Title})
	})
	mux.HandleFunc("GET /api/Student", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Student{})
	})
	mux.HandleFunc("GET /api/Payment", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Payment{})
	})

	tb.Server = httptest.NewServer(mux)
	t.Cleanup(tb.Close)
	return tb
}

func newTeacherServer(t *testing.T) (*httptest.Server, *teacherBackend) {
	t.Helper()
	backend := newTeacherBackend(t)
	fb := &fakeBackend{}
	fb.Server = backend.Server
	return newFlowServer(t, fb), backend
}

func teacherSignIn(t *testing.T, c *http.Client, base, email string) {
	t.Helper()
	resp := postForm(t, c, base+"/auth/login", url.Values{
		"email":    {email},
		"password": {"secret"},
	})
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Fatalf("login redirect = %q, want /dashboard", loc)
	}
}

func TestTeacherFlow_ApproveCourse(t *testing.T) {
	srv, backend := newTeacherServer(t)
	c := flowClient(t)
	teacherSignIn(t, c, srv.URL, "sam@example.com")

	resp := postForm(t, c, srv.URL+"/teach/courses/c1/approve", nil)
	if loc := resp.Header.Get("Location"); loc != "/teach/review" {
		t.Fatalf("approve redirect = %q, want /teach/review", loc)
	}
	if backend.approved.Load() != 1 {
		t.Errorf("backend approvals = %d, want 1", backend.approved.Load())
	}
}

func TestTeacherFlow_ExamFormValidationBlocksSubmission(t *testing.T) {
	srv, backend := newTeacherServer(t)
	c := flowClient(t)
	teacherSignIn(t, c, srv.URL, "sam@example.com")

	// No questions and no title: the form must be rejected before any
	// network call.
	resp := postForm(t, c, srv.URL+"/teach/courses/c1/exams", url.Values{
		"description": {"half-filled draft"},
		"duration":    {"30"},
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "At least one question is required") {
		t.Error("expected question-count problem in form errors")
	}
	if !strings.Contains(string(body), "Title is required") {
		t.Error("expected title problem in form errors")
	}
	if backend.created.Load() != 0 {
		t.Errorf("backend create calls = %d, want 0", backend.created.Load())
	}
}

func TestTeacherFlow_CreateExam(t *testing.T) {
	srv, backend := newTeacherServer(t)
	c := flowClient(t)
	teacherSignIn(t, c, srv.URL, "sam@example.com")

	form := url.Values{
		"title":         {"Final"},
		"description":   {"End of course exam"},
		"duration":      {"60"},
		"total_points":  {"10"},
		"passing_score": {"5"},
		"start_date":    {"2026-09-01"},
		"end_date":      {"2026-09-30"},
		"question_0":    {"2+2?"},
		"option_0_0":    {"3"},
		"option_0_1":    {"4"},
		"option_0_2":    {"5"},
		"option_0_3":    {"6"},
		"correct_0":     {"1"},
		"points_0":      {"10"},
	}
	resp := postForm(t, c, srv.URL+"/teach/courses/c1/exams", form)
	if loc := resp.Header.Get("Location"); loc != "/teach/courses/c1/exams" {
		t.Fatalf("create redirect = %q, want exam listing", loc)
	}
	if backend.created.Load() != 1 {
		t.Errorf("backend create calls = %d, want 1", backend.created.Load())
	}
}

func TestTeacherFlow_AssistantReachesTeachingPages(t *testing.T) {
	srv, _ := newTeacherServer(t)
	c := flowClient(t)
	teacherSignIn(t, c, srv.URL, "assistant@example.com")

	resp, err := c.Get(srv.URL + "/teach")
	if err != nil {
		t.Fatalf("GET /teach: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Teaching") {
		t.Error("teacher dashboard missing for assistant")
	}
}
