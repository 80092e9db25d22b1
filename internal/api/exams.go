package api

import (
	"context"
	"fmt"

	"github.com/me/campus/pkg/model"
)

// ListExams returns the exams of a course, including each exam's status
// and score for the calling student.
func (c *Client) ListExams(ctx context.Context, courseID string) ([]model.Exam, error) {
	var exams []model.Exam
	if err := c.get(ctx, "exams.list", fmt.Sprintf("/api/Course/%s/exams", courseID), &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// GetExam fetches a single exam with its questions.
func (c *Client) GetExam(ctx context.Context, courseID, examID string) (*model.Exam, error) {
	var exam model.Exam
	if err := c.get(ctx, "exams.get", fmt.Sprintf("/api/Course/%s/exams/%s", courseID, examID), &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// CreateExam adds an exam to a course.
func (c *Client) CreateExam(ctx context.Context, courseID string, draft model.ExamDraft) (*model.Exam, error) {
	var created model.Exam
	if err := c.post(ctx, "exams.create", fmt.Sprintf("/api/Course/%s/exams", courseID), draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateExam replaces an exam's definition.
func (c *Client) UpdateExam(ctx context.Context, courseID, examID string, draft model.ExamDraft) error {
	return c.put(ctx, "exams.update", fmt.Sprintf("/api/Course/%s/exams/%s", courseID, examID), draft, nil)
}

// DeleteExam removes an exam from a course.
func (c *Client) DeleteExam(ctx context.Context, courseID, examID string) error {
	return c.del(ctx, "exams.delete", fmt.Sprintf("/api/Course/%s/exams/%s", courseID, examID))
}

// submitRequest is the grading payload. Answers maps question ID to the
// zero-based index of the chosen option; unanswered questions are
// simply absent.
type submitRequest struct {
	Answers map[string]int `json:"answers"`
}

// SubmitExam sends a student's answers for grading and returns the
// graded result. Only answered questions appear in the payload.
func (c *Client) SubmitExam(ctx context.Context, courseID, examID string, answers map[string]int) (*model.SubmitResult, error) {
	if answers == nil {
		answers = map[string]int{}
	}
	var result model.SubmitResult
	path := fmt.Sprintf("/api/Course/%s/exams/%s/submit", courseID, examID)
	if err := c.post(ctx, "exams.submit", path, submitRequest{Answers: answers}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
