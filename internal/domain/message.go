package domain

import "time"

// Message is a staff/tenant mailbox record.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Read       bool      `json:"read"`
	SentAt     time.Time `json:"sent_at"`
}

func (m Message) EntityID() string {
	return m.ID
}
