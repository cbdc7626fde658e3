package domain

import "time"

// StreamEntityChanged carries change notifications published by the property
// data service (and by the API after successful writes) so other instances
// can refresh their in-memory collections.
const StreamEntityChanged = "property.entity.changed"

// Entity change actions
const (
	ChangeActionCreated = "created"
	ChangeActionUpdated = "updated"
	ChangeActionDeleted = "deleted"
)

// EntityChangeEvent names the collection that changed. Consumers refetch the
// whole collection rather than patching single entities, so EntityID is
// informational.
type EntityChangeEvent struct {
	Collection string    `json:"collection"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StreamMessage is a raw message read from a redis stream.
type StreamMessage struct {
	ID   string
	Data string
}
