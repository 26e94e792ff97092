package models

import "time"

// Payment is one (student, month, year) fee cell. At most one row exists per
// cell; the amount is a snapshot of the grade fee at creation time and is
// never retroactively corrected. PaidAt is stamped on the transition to paid
// and cleared whenever the row is unpaid.
type Payment struct {
	ID        string     `json:"id"`
	StudentID string     `json:"student_id"`
	Month     Month      `json:"month"`
	Year      int        `json:"year"`
	Amount    float64    `json:"amount"`
	IsPaid    bool       `json:"is_paid"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}
