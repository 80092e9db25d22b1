package model

import "time"

// PaymentStatus is the backend-reported state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is a single payment record as reported by the backend.
// The front-end never computes money; it renders what the API returns.
type Payment struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	StudentName string        `json:"studentName"`
	CourseID    string        `json:"courseId"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Status      PaymentStatus `json:"status"`
	Method      string        `json:"method"` // credit_card, paypal, bank_transfer
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
}

// SubscriptionPlan is a purchasable plan shown on the pricing page.
type SubscriptionPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency"`
	Interval string   `json:"interval"` // monthly, yearly
	Features []string `json:"features"`
	Discount float64  `json:"discount,omitempty"`
}

// Subscription is a student's active plan.
type Subscription struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	PlanID    string    `json:"planId"`
	Status    string    `json:"status"` // active, cancelled, expired
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	AutoRenew bool      `json:"autoRenew"`
}

// DiscountResult is the backend's answer to applying a discount code.
type DiscountResult struct {
	Code           string  `json:"code"`
	OriginalAmount float64 `json:"originalAmount"`
	FinalAmount    float64 `json:"finalAmount"`
}
