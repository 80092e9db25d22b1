package exam

import (
	"errors"
	"sync"
	"time"

	"github.com/me/campus/pkg/model"
)

// ErrNoAttempt is returned when a session has no active attempt.
var ErrNoAttempt = errors.New("no active attempt")

// Manager holds the live attempt for each signed-in session. Attempts
// are server state, so a page reload lands the student back in the
// same attempt with the clock still running.
type Manager struct {
	mu       sync.Mutex
	attempts map[string]*Attempt // session ID -> live attempt
	now      func() time.Time
}

// NewManager creates an attempt manager. A nil clock uses time.Now.
func NewManager(now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		attempts: make(map[string]*Attempt),
		now:      now,
	}
}

// Start begins an attempt for the session. An earlier live attempt for
// the same exam is resumed instead of restarted; an attempt on a
// different exam is abandoned.
func (m *Manager) Start(sessionID string, exam model.Exam) (*Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.attempts[sessionID]; ok {
		if e := existing.Exam(); e.ID == exam.ID && existing.Phase() != PhaseCompleted {
			return existing, nil
		}
	}

	attempt, err := Start(exam, m.now)
	if err != nil {
		return nil, err
	}
	m.attempts[sessionID] = attempt
	return attempt, nil
}

// Get returns the session's live attempt.
func (m *Manager) Get(sessionID string) (*Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	attempt, ok := m.attempts[sessionID]
	if !ok {
		return nil, ErrNoAttempt
	}
	return attempt, nil
}

// Finish drops the session's attempt, returning the student to the
// exam listing.
func (m *Manager) Finish(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, sessionID)
}

// DropSession removes any attempt belonging to a session that logged
// out or expired.
func (m *Manager) DropSession(sessionID string) {
	m.Finish(sessionID)
}

// Len returns the number of live attempts.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.attempts)
}
