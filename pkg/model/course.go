package model

import "time"

// CourseStatus is the review state of a course on the teacher side.
type CourseStatus string

const (
	CoursePending  CourseStatus = "pending"
	CourseApproved CourseStatus = "approved"
	CourseRejected CourseStatus = "rejected"
)

// Course is a catalog entry. Rating and EnrolledStudents are computed
// by the backend.
type Course struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Price            float64      `json:"price"`
	Instructor       string       `json:"instructor"`
	Duration         string       `json:"duration"`
	Level            string       `json:"level"` // beginner, intermediate, advanced
	Category         string       `json:"category"`
	Rating           float64      `json:"rating"`
	EnrolledStudents int          `json:"enrolledStudents"`
	ImageURL         string       `json:"imageUrl"`
	Status           CourseStatus `json:"status,omitempty"`
}

// Review is a student review of a course.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CourseID  string    `json:"courseId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScheduleItem is one entry in a student's weekly schedule.
type ScheduleItem struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Type     string    `json:"type"` // lecture, exam, live_session
	CourseID string    `json:"courseId"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

// Message is one entry in a student's inbox.
type Message struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Read    bool      `json:"read"`
	SentAt  time.Time `json:"sentAt"`
}

// Certificate records a course completion.
type Certificate struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	IssuedAt    time.Time `json:"issuedAt"`
	DownloadURL string    `json:"downloadUrl"`
}
