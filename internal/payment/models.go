package payment

import (
	"time"

	"github.com/google/uuid"
)

// Status is the terminal outcome of one verification attempt. Every request
// moves PENDING -> {VERIFIED, REJECTED, ERRORED} exactly once; retries, if
// any, belong to the gateway's client-side redirect flow.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusVerified Status = "VERIFIED"
	StatusRejected Status = "REJECTED"
	StatusErrored  Status = "ERRORED"
)

// BookingDetails is the customer and plot context submitted alongside the
// callback tokens. It feeds notification content only and never enters the
// signature computation.
type BookingDetails struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Project      string `json:"project"`
	PlotNumber   string `json:"plotNumber"`
	AmountPaise  int64  `json:"amountPaise"`
}

// VerificationRequest carries the three opaque tokens from the checkout
// callback plus booking context. Created per HTTP request and discarded
// after the outcome is returned.
type VerificationRequest struct {
	OrderID   string
	PaymentID string
	Signature string
	Booking   BookingDetails
}

// VerificationResult is the outcome returned to the transport layer.
type VerificationResult struct {
	Status    Status
	OrderID   string
	PaymentID string
}

// Booking is the persisted record of a verified token payment.
type Booking struct {
	ID         uuid.UUID
	OrderID    string
	PaymentID  string
	Details    BookingDetails
	VerifiedAt time.Time
}
