package api

import (
	"context"
	"fmt"

	"github.com/me/campus/pkg/model"
)

// ListStudents returns the roster visible to a teacher.
func (c *Client) ListStudents(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := c.get(ctx, "students.list", "/api/Student", &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent fetches a single roster entry.
func (c *Client) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	if err := c.get(ctx, "students.get", "/api/Student/"+id, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// ListSchedule returns the calling student's upcoming sessions.
func (c *Client) ListSchedule(ctx context.Context) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem
	if err := c.get(ctx, "students.schedule", "/api/Student/schedule", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListMessages returns the calling user's inbox.
func (c *Client) ListMessages(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	if err := c.get(ctx, "students.messages", "/api/Student/messages", &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListCertificates returns the calling student's earned certificates.
func (c *Client) ListCertificates(ctx context.Context) ([]model.Certificate, error) {
	var certs []model.Certificate
	if err := c.get(ctx, "students.certificates", "/api/Student/certificates", &certs); err != nil {
		return nil, err
	}
	return certs, nil
}

// MarkMessageRead flags a message as read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID string) error {
	return c.put(ctx, "students.messages.read", fmt.Sprintf("/api/Student/messages/%s/read", messageID), nil, nil)
}
