package model

import "time"

// User is the account behind a session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Student is a roster row on the teacher dashboard.
type Student struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	EnrolledCourses int       `json:"enrolledCourses"`
	AverageScore    float64   `json:"averageScore"`
	JoinedAt        time.Time `json:"joinedAt"`
}
