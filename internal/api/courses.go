package api

import (
	"context"
	"fmt"

	"github.com/me/campus/pkg/model"
)

// ListCourses returns every course visible to the caller. Students see
// approved courses; teachers additionally see their own pending ones.
func (c *Client) ListCourses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := c.get(ctx, "courses.list", "/api/Course", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse fetches a single course by ID.
func (c *Client) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := c.get(ctx, "courses.get", "/api/Course/"+id, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse submits a new course for review.
func (c *Client) CreateCourse(ctx context.Context, course model.Course) (*model.Course, error) {
	var created model.Course
	if err := c.post(ctx, "courses.create", "/api/Course", course, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCourse replaces a course's mutable fields.
func (c *Client) UpdateCourse(ctx context.Context, course model.Course) error {
	return c.put(ctx, "courses.update", "/api/Course/"+course.ID, course, nil)
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.del(ctx, "courses.delete", "/api/Course/"+id)
}

// ApproveCourse marks a pending course as approved.
func (c *Client) ApproveCourse(ctx context.Context, id string) error {
	return c.put(ctx, "courses.approve", fmt.Sprintf("/api/Course/%s/approve", id), nil, nil)
}

// RejectCourse marks a pending course as rejected.
func (c *Client) RejectCourse(ctx context.Context, id string) error {
	return c.put(ctx, "courses.reject", fmt.Sprintf("/api/Course/%s/reject", id), nil, nil)
}

// ListReviews returns the reviews for a course.
func (c *Client) ListReviews(ctx context.Context, courseID string) ([]model.Review, error) {
	var reviews []model.Review
	if err := c.get(ctx, "courses.reviews", fmt.Sprintf("/api/Course/%s/reviews", courseID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// EnrollCourse enrolls the calling student in a course.
func (c *Client) EnrollCourse(ctx context.Context, courseID string) error {
	return c.post(ctx, "courses.enroll", fmt.Sprintf("/api/Course/%s/enroll", courseID), nil, nil)
}
