package domain

import "time"

// Appointment types
const (
	AppointmentTypeViewing    = "viewing"
	AppointmentTypeInspection = "inspection"
	AppointmentTypeRepair     = "repair"
	AppointmentTypeMeeting    = "meeting"
)

// Appointment statuses
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment is a calendar entry. PropertyID is optional: an appointment
// without one (or with one that no longer resolves) never appears on the map.
type Appointment struct {
	ID         string     `json:"id"`
	PropertyID *string    `json:"property_id,omitempty"`
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (a Appointment) EntityID() string {
	return a.ID
}
