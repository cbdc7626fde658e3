package repository

import (
	"context"

	"github.com/property-admin/internal/domain"
)

// PropertyDataRepository - client contract for the remote property data
// service that owns persistence of the six entity collections. This service
// keeps no storage of its own: every write goes through here first and only
// a successful response is dispatched into the in-memory store.
type PropertyDataRepository interface {
	ListProperties(ctx context.Context) ([]domain.Property, error)
	CreateProperty(ctx context.Context, p domain.Property) (*domain.Property, error)
	UpdateProperty(ctx context.Context, p domain.Property) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id string) error

	ListTenants(ctx context.Context) ([]domain.Tenant, error)
	CreateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error

	ListMaintenanceRequests(ctx context.Context) ([]domain.MaintenanceRequest, error)
	CreateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	DeleteMaintenanceRequest(ctx context.Context, id string) error

	ListPayments(ctx context.Context) ([]domain.Payment, error)
	CreatePayment(ctx context.Context, p domain.Payment) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, p domain.Payment) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id string) error

	ListMessages(ctx context.Context) ([]domain.Message, error)
	CreateMessage(ctx context.Context, m domain.Message) (*domain.Message, error)
	UpdateMessage(ctx context.Context, m domain.Message) (*domain.Message, error)
	DeleteMessage(ctx context.Context, id string) error

	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}
