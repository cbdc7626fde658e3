package domain

import "time"

// Tenant statuses
const (
	TenantStatusActive  = "active"
	TenantStatusPending = "pending"
	TenantStatusFormer  = "former"
	TenantStatusEvicted = "evicted"
)

// EmergencyContact is an optional embedded record on a tenant.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Tenant links a user to a leased property.
type Tenant struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	PropertyID       string            `json:"property_id"`
	LeaseStart       time.Time         `json:"lease_start"`
	LeaseEnd         time.Time         `json:"lease_end"`
	RentAmount       float64           `json:"rent_amount"`
	SecurityDeposit  float64           `json:"security_deposit"`
	Status           string            `json:"status"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (t Tenant) EntityID() string {
	return t.ID
}
