package exam

import (
	"errors"
	"testing"
)

func TestManager_StartAndGet(t *testing.T) {
	m := NewManager(nil)

	attempt, err := m.Start("sess-1", sampleExam())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	got, err := m.Get("sess-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != attempt {
		t.Error("Get() returned a different attempt")
	}
}

func TestManager_GetNoAttempt(t *testing.T) {
	m := NewManager(nil)
	if _, err := m.Get("sess-1"); !errors.Is(err, ErrNoAttempt) {
		t.Errorf("Get() error = %v, want ErrNoAttempt", err)
	}
}

func TestManager_ResumesSameExam(t *testing.T) {
	m := NewManager(nil)

	first, _ := m.Start("sess-1", sampleExam())
	first.SelectAnswer("q1", 2)

	// Starting the same exam again (page reload) resumes the live
	// attempt instead of wiping it.
	second, err := m.Start("sess-1", sampleExam())
	if err != nil {
		t.Fatalf("Start() resume error = %v", err)
	}
	if second != first {
		t.Fatal("expected the original attempt back")
	}
	if got := second.Answer("q1"); got != 2 {
		t.Errorf("answer lost across resume: got %d, want 2", got)
	}
}

func TestManager_DifferentExamReplaces(t *testing.T) {
	m := NewManager(nil)

	first, _ := m.Start("sess-1", sampleExam())

	other := sampleExam()
	other.ID = "e2"
	second, err := m.Start("sess-1", other)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if second == first {
		t.Error("expected a fresh attempt for a different exam")
	}
	if second.Exam().ID != "e2" {
		t.Errorf("attempt exam = %s, want e2", second.Exam().ID)
	}
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager(nil)

	a1, _ := m.Start("sess-1", sampleExam())
	a2, _ := m.Start("sess-2", sampleExam())

	a1.SelectAnswer("q1", 0)
	if got := a2.Answer("q1"); got != -1 {
		t.Errorf("sessions share state: sess-2 answer = %d", got)
	}
}

func TestManager_Finish(t *testing.T) {
	m := NewManager(nil)

	m.Start("sess-1", sampleExam())
	m.Finish("sess-1")

	if _, err := m.Get("sess-1"); !errors.Is(err, ErrNoAttempt) {
		t.Errorf("Get() after Finish error = %v, want ErrNoAttempt", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}
