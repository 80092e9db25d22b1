package model

import "time"

// ExamStatus is the per-student attempt status of an exam.
type ExamStatus string

const (
	ExamNotStarted ExamStatus = "not_started"
	ExamInProgress ExamStatus = "in_progress"
	ExamCompleted  ExamStatus = "completed"
)

// Exam is a fixed set of graded questions belonging to a course.
// Status and Score are per-student fields filled in by the backend;
// Score is only meaningful once Status is completed.
type Exam struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Duration     int        `json:"duration"` // minutes
	TotalPoints  int        `json:"totalPoints"`
	PassingScore int        `json:"passingScore"`
	Questions    []Question `json:"questions"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	CourseID     string     `json:"courseId"`
	Status       ExamStatus `json:"status,omitempty"`
	Score        *int       `json:"score,omitempty"`
}

// Completed reports whether the student already finished this exam.
// Completed exams render a read-only score view instead of a start button.
func (e *Exam) Completed() bool {
	return e.Status == ExamCompleted
}

// Question is one exam item. CorrectAnswer is a 0-based index into
// Options. The authoring form always produces 4 options but the data
// model does not enforce that.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Points        int      `json:"points"`
}

// ExamDraft is the authoring payload for creating or updating an exam.
// Validation tags mirror the checks the form applies before any network
// call is made.
type ExamDraft struct {
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description" validate:"required"`
	Duration     int             `json:"duration" validate:"gt=0"`
	TotalPoints  int             `json:"totalPoints" validate:"gt=0"`
	PassingScore int             `json:"passingScore" validate:"gte=0"`
	Questions    []QuestionDraft `json:"questions" validate:"min=1,dive"`
	StartDate    string          `json:"startDate" validate:"required"`
	EndDate      string          `json:"endDate" validate:"required"`
	CourseID     string          `json:"courseId"`
}

// QuestionDraft is one question in an authoring payload.
type QuestionDraft struct {
	ID            string   `json:"id,omitempty"`
	Text          string   `json:"text" validate:"required"`
	Options       []string `json:"options" validate:"len=4,dive,required"`
	CorrectAnswer int      `json:"correctAnswer" validate:"gte=0,lt=4"`
	Points        int      `json:"points" validate:"gt=0"`
}

// SubmitResult is the grading response for a submitted attempt.
type SubmitResult struct {
	Score       int  `json:"score"`
	TotalPoints int  `json:"totalPoints"`
	Passed      bool `json:"passed"`
}
