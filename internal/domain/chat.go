package domain

import "time"

// Chat transcript authors
const (
	ChatAuthorUser = "user"
	ChatAuthorBot  = "bot"
)

// ChatMessage is one transcript entry. Transcripts are append-only: entries
// are never mutated or removed once added.
type ChatMessage struct {
	ID     string    `json:"id"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}
