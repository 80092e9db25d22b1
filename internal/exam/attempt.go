package exam

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/me/campus/pkg/model"
)

// Phase is the lifecycle stage of an attempt.
type Phase string

const (
	// PhaseInProgress means the student is answering questions.
	PhaseInProgress Phase = "in_progress"

	// PhaseConfirming means the submit confirmation dialog is open.
	// Answers can no longer change until the dialog is resolved.
	PhaseConfirming Phase = "confirming"

	// PhaseCompleted means the backend confirmed the submission.
	PhaseCompleted Phase = "completed"
)

// Errors returned by attempt operations.
var (
	// ErrExamCompleted is returned when starting an attempt on an exam
	// the student already finished.
	ErrExamCompleted = errors.New("exam already completed")

	// ErrNotInProgress is returned when answering outside the
	// in-progress phase.
	ErrNotInProgress = errors.New("attempt is not in progress")

	// ErrNotConfirming is returned when confirming or cancelling a
	// submit with no confirmation pending.
	ErrNotConfirming = errors.New("no submit confirmation pending")

	// ErrUnknownQuestion is returned for an answer to a question the
	// exam does not contain.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrSubmitInFlight is returned when a confirm or cancel arrives
	// while an earlier confirm is still talking to the backend.
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// SubmitFunc sends the answers to the grading backend. The attempt
// stays alive when it fails so the student can retry without losing
// work.
type SubmitFunc func(ctx context.Context, courseID, examID string, answers map[string]int) (*model.SubmitResult, error)

// Attempt is one student's live run through a timed exam. All state is
// held server-side; the browser only renders snapshots of it.
type Attempt struct {
	mu         sync.Mutex
	exam       model.Exam
	phase      Phase
	answers    map[string]int
	countdown  *Countdown
	result     *model.SubmitResult
	startedAt  time.Time
	submitting bool
}

// Start begins an attempt on the given exam. Completed exams cannot be
// retaken.
func Start(exam model.Exam, now func() time.Time) (*Attempt, error) {
	if exam.Completed() {
		return nil, fmt.Errorf("%w: %s", ErrExamCompleted, exam.ID)
	}
	if now == nil {
		now = time.Now
	}
	return &Attempt{
		exam:      exam,
		phase:     PhaseInProgress,
		answers:   make(map[string]int),
		countdown: NewCountdown(time.Duration(exam.Duration)*time.Minute, now),
		startedAt: now(),
	}, nil
}

// Exam returns the exam under attempt.
func (a *Attempt) Exam() model.Exam {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.exam
}

// Phase returns the current lifecycle stage.
func (a *Attempt) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Remaining returns the time left on the attempt clock, clamped at
// zero. The clock keeps its deadline while the confirmation dialog is
// open; pausing it would extend the exam.
func (a *Attempt) Remaining() time.Duration {
	return a.countdown.Remaining()
}

// SelectAnswer records the chosen option for a question, replacing any
// earlier choice. Re-selecting the same option is a no-op.
func (a *Attempt) SelectAnswer(questionID string, option int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase != PhaseInProgress {
		return ErrNotInProgress
	}

	var q *model.Question
	for i := range a.exam.Questions {
		if a.exam.Questions[i].ID == questionID {
			q = &a.exam.Questions[i]
			break
		}
	}
	if q == nil {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("option %d out of range for question %s", option, questionID)
	}

	a.answers[questionID] = option
	return nil
}

// Answer returns the recorded option for a question, or -1 when the
// question is unanswered.
func (a *Attempt) Answer(questionID string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v, ok := a.answers[questionID]; ok {
		return v
	}
	return -1
}

// Answers returns a copy of the recorded answers. Unanswered questions
// are absent, which is exactly the shape the grading payload wants.
func (a *Attempt) Answers() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]int, len(a.answers))
	for k, v := range a.answers {
		out[k] = v
	}
	return out
}

// AnsweredCount returns how many questions have a recorded answer.
func (a *Attempt) AnsweredCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.answers)
}

// RequestSubmit opens the confirmation dialog. Answers freeze until the
// dialog is confirmed or cancelled; the clock keeps running.
func (a *Attempt) RequestSubmit() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	a.phase = PhaseConfirming
	return nil
}

// CancelSubmit closes the confirmation dialog and resumes answering.
// It refuses while a confirm is in flight; the backend may already be
// grading those answers.
func (a *Attempt) CancelSubmit() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseConfirming {
		return ErrNotConfirming
	}
	if a.submitting {
		return ErrSubmitInFlight
	}
	a.phase = PhaseInProgress
	return nil
}

// ConfirmSubmit sends the answers for grading. On failure the attempt
// stays in the confirming phase with every answer intact, so the
// student can retry or cancel back to the questions. Only a confirmed
// success completes the attempt.
func (a *Attempt) ConfirmSubmit(ctx context.Context, submit SubmitFunc) (*model.SubmitResult, error) {
	a.mu.Lock()
	if a.phase != PhaseConfirming {
		a.mu.Unlock()
		return nil, ErrNotConfirming
	}
	if a.submitting {
		// A double-clicked confirm must not hit the grading endpoint
		// twice.
		a.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	a.submitting = true
	answers := make(map[string]int, len(a.answers))
	for k, v := range a.answers {
		answers[k] = v
	}
	courseID, examID := a.exam.CourseID, a.exam.ID
	a.mu.Unlock()

	// The backend call runs unlocked so a slow submit cannot block
	// countdown reads.
	result, err := submit(ctx, courseID, examID, answers)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.submitting = false
	if err != nil {
		return nil, err
	}
	a.phase = PhaseCompleted
	a.result = result
	return result, nil
}

// Result returns the graded result once the attempt is completed.
func (a *Attempt) Result() *model.SubmitResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// StartedAt returns when the attempt began.
func (a *Attempt) StartedAt() time.Time {
	return a.startedAt
}
