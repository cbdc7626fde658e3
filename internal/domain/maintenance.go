package domain

import "time"

// Maintenance request priorities
const (
	MaintenancePriorityLow       = "low"
	MaintenancePriorityMedium    = "medium"
	MaintenancePriorityHigh      = "high"
	MaintenancePriorityEmergency = "emergency"
)

// Maintenance request categories
const (
	MaintenanceCategoryPlumbing   = "plumbing"
	MaintenanceCategoryElectrical = "electrical"
	MaintenanceCategoryHVAC       = "hvac"
	MaintenanceCategoryAppliance  = "appliance"
	MaintenanceCategoryStructural = "structural"
	MaintenanceCategoryOther      = "other"
)

// Maintenance request statuses
const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

// MaintenanceRequest references exactly one property by id. The reference
// may dangle (the property was deleted or filtered away); consumers must
// tolerate that and skip the record.
type MaintenanceRequest struct {
	ID          string     `json:"id"`
	PropertyID  string     `json:"property_id"`
	TenantID    *string    `json:"tenant_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func (m MaintenanceRequest) EntityID() string {
	return m.ID
}
