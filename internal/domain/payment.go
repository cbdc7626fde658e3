package domain

import "time"

// Payment statuses
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusLate    = "late"
	PaymentStatusFailed  = "failed"
)

// Payment is a simple attributed record; no invariants beyond id uniqueness
// within the collection.
type Payment struct {
	ID       string     `json:"id"`
	TenantID string     `json:"tenant_id"`
	Amount   float64    `json:"amount"`
	Type     string     `json:"type"`
	Status   string     `json:"status"`
	Method   *string    `json:"method,omitempty"`
	DueDate  time.Time  `json:"due_date"`
	PaidDate *time.Time `json:"paid_date,omitempty"`
}

func (p Payment) EntityID() string {
	return p.ID
}
