package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/domain/repository"
	"github.com/property-admin/internal/pkg/errors"
	"github.com/property-admin/internal/store"
)

// EntityUseCase moves entity collections between the remote property data
// service and the in-memory store. The store is only ever mutated from here:
// refreshes replace a whole collection, writes go to the remote service
// first and only a successful response is dispatched into the store.
//
// Remote failures follow the stale-is-fine policy: the error is logged and
// surfaced, the collection keeps its last-known state, and nothing is
// retried.
type EntityUseCase struct {
	dataRepo    repository.PropertyDataRepository
	cacheRepo   repository.CacheRepository
	streamRepo  repository.StreamRepository
	store       *store.Store
	snapshotTTL time.Duration
	logger      *zap.Logger
}

// NewEntityUseCase - creation of a new EntityUseCase. streamRepo may be nil
// when change publishing is not wanted (the sync worker's own refreshes).
func NewEntityUseCase(
	dataRepo repository.PropertyDataRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	st *store.Store,
	snapshotTTL time.Duration,
	logger *zap.Logger,
) *EntityUseCase {
	return &EntityUseCase{
		dataRepo:    dataRepo,
		cacheRepo:   cacheRepo,
		streamRepo:  streamRepo,
		store:       st,
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// refreshCollection fetches a whole collection, dispatches it into the store
// and writes the snapshot cache. The loading flag brackets the remote call.
func refreshCollection[T any](
	ctx context.Context,
	uc *EntityUseCase,
	collection string,
	list func(context.Context) ([]T, error),
	set func([]T),
) ([]T, error) {
	uc.store.SetLoading(collection, true)
	defer uc.store.SetLoading(collection, false)

	items, err := list(ctx)
	if err != nil {
		uc.logger.Error("Failed to refresh collection",
			zap.String("collection", collection),
			zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	set(items)
	uc.cacheSnapshot(ctx, collection, items)

	uc.logger.Debug("Collection refreshed",
		zap.String("collection", collection),
		zap.Int("count", len(items)))

	return items, nil
}

// warmCollection loads a cached snapshot into the store, if one exists.
func warmCollection[T any](ctx context.Context, uc *EntityUseCase, collection string, set func([]T)) {
	data, err := uc.cacheRepo.GetSnapshot(ctx, collection)
	if err != nil || data == nil {
		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		uc.logger.Warn("Discarding unreadable snapshot",
			zap.String("collection", collection),
			zap.Error(err))
		return
	}

	set(items)
	uc.logger.Info("Collection warmed from snapshot",
		zap.String("collection", collection),
		zap.Int("count", len(items)))
}

func (uc *EntityUseCase) cacheSnapshot(ctx context.Context, collection string, items interface{}) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.SetSnapshot(ctx, collection, data, uc.snapshotTTL); err != nil {
		uc.logger.Warn("Failed to cache snapshot",
			zap.String("collection", collection),
			zap.Error(err))
	}
}

// publishChange notifies other instances after a successful remote write.
// Best effort: a publish failure never fails the operation.
func (uc *EntityUseCase) publishChange(ctx context.Context, collection, entityID, action string) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.EntityChangeEvent{
		Collection: collection,
		EntityID:   entityID,
		Action:     action,
		OccurredAt: time.Now(),
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamEntityChanged, event); err != nil {
		uc.logger.Warn("Failed to publish change event",
			zap.String("collection", collection),
			zap.Error(err))
	}
}

// WarmStart seeds all six collections from cached snapshots so the service
// serves last-known data before its first remote fetch.
func (uc *EntityUseCase) WarmStart(ctx context.Context) {
	warmCollection(ctx, uc, domain.CollectionProperties, uc.store.SetProperties)
	warmCollection(ctx, uc, domain.CollectionTenants, uc.store.SetTenants)
	warmCollection(ctx, uc, domain.CollectionMaintenance, uc.store.SetMaintenanceRequests)
	warmCollection(ctx, uc, domain.CollectionPayments, uc.store.SetPayments)
	warmCollection(ctx, uc, domain.CollectionMessages, uc.store.SetMessages)
	warmCollection(ctx, uc, domain.CollectionAppointments, uc.store.SetAppointments)
}

// Refresh refetches one collection by name.
func (uc *EntityUseCase) Refresh(ctx context.Context, collection string) error {
	var err error
	switch collection {
	case domain.CollectionProperties:
		_, err = uc.RefreshProperties(ctx)
	case domain.CollectionTenants:
		_, err = uc.RefreshTenants(ctx)
	case domain.CollectionMaintenance:
		_, err = uc.RefreshMaintenanceRequests(ctx)
	case domain.CollectionPayments:
		_, err = uc.RefreshPayments(ctx)
	case domain.CollectionMessages:
		_, err = uc.RefreshMessages(ctx)
	case domain.CollectionAppointments:
		_, err = uc.RefreshAppointments(ctx)
	default:
		err = errors.ErrInvalidCollection
	}
	return err
}

// --- properties ---

func (uc *EntityUseCase) RefreshProperties(ctx context.Context) ([]domain.Property, error) {
	return refreshCollection(ctx, uc, domain.CollectionProperties, uc.dataRepo.ListProperties, uc.store.SetProperties)
}

func (uc *EntityUseCase) CreateProperty(ctx context.Context, p domain.Property) (*domain.Property, error) {
	created, err := uc.dataRepo.CreateProperty(ctx, p)
	if err != nil {
		uc.logger.Error("Failed to create property", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.AddProperty(*created)
	uc.publishChange(ctx, domain.CollectionProperties, created.ID, domain.ChangeActionCreated)
	return created, nil
}

func (uc *EntityUseCase) UpdateProperty(ctx context.Context, p domain.Property) (*domain.Property, error) {
	updated, err := uc.dataRepo.UpdateProperty(ctx, p)
	if err != nil {
		uc.logger.Error("Failed to update property", zap.String("id", p.ID), zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.UpdateProperty(*updated)
	uc.publishChange(ctx, domain.CollectionProperties, updated.ID, domain.ChangeActionUpdated)
	return updated, nil
}

func (uc *EntityUseCase) DeleteProperty(ctx context.Context, id string) error {
	if err := uc.dataRepo.DeleteProperty(ctx, id); err != nil {
		uc.logger.Error("Failed to delete property", zap.String("id", id), zap.Error(err))
		return errors.ErrUpstreamUnavailable
	}

	uc.store.DeleteProperty(id)
	uc.publishChange(ctx, domain.CollectionProperties, id, domain.ChangeActionDeleted)
	return nil
}

// --- tenants ---

func (uc *EntityUseCase) RefreshTenants(ctx context.Context) ([]domain.Tenant, error) {
	return refreshCollection(ctx, uc, domain.CollectionTenants, uc.dataRepo.ListTenants, uc.store.SetTenants)
}

func (uc *EntityUseCase) CreateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error) {
	created, err := uc.dataRepo.CreateTenant(ctx, t)
	if err != nil {
		uc.logger.Error("Failed to create tenant", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.AddTenant(*created)
	uc.publishChange(ctx, domain.CollectionTenants, created.ID, domain.ChangeActionCreated)
	return created, nil
}

func (uc *EntityUseCase) UpdateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error) {
	updated, err := uc.dataRepo.UpdateTenant(ctx, t)
	if err != nil {
		uc.logger.Error("Failed to update tenant", zap.String("id", t.ID), zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.UpdateTenant(*updated)
	uc.publishChange(ctx, domain.CollectionTenants, updated.ID, domain.ChangeActionUpdated)
	return updated, nil
}

func (uc *EntityUseCase) DeleteTenant(ctx context.Context, id string) error {
	if err := uc.dataRepo.DeleteTenant(ctx, id); err != nil {
		uc.logger.Error("Failed to delete tenant", zap.String("id", id), zap.Error(err))
		return errors.ErrUpstreamUnavailable
	}

	uc.store.DeleteTenant(id)
	uc.publishChange(ctx, domain.CollectionTenants, id, domain.ChangeActionDeleted)
	return nil
}

// --- maintenance requests ---

func (uc *EntityUseCase) RefreshMaintenanceRequests(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	return refreshCollection(ctx, uc, domain.CollectionMaintenance, uc.dataRepo.ListMaintenanceRequests, uc.store.SetMaintenanceRequests)
}

func (uc *EntityUseCase) CreateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	created, err := uc.dataRepo.CreateMaintenanceRequest(ctx, m)
	if err != nil {
		uc.logger.Error("Failed to create maintenance request", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.AddMaintenanceRequest(*created)
	uc.publishChange(ctx, domain.CollectionMaintenance, created.ID, domain.ChangeActionCreated)
	return created, nil
}

func (uc *EntityUseCase) UpdateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	updated, err := uc.dataRepo.UpdateMaintenanceRequest(ctx, m)
	if err != nil {
		uc.logger.Error("Failed to update maintenance request", zap.String("id", m.ID), zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.UpdateMaintenanceRequest(*updated)
	uc.publishChange(ctx, domain.CollectionMaintenance, updated.ID, domain.ChangeActionUpdated)
	return updated, nil
}

func (uc *EntityUseCase) DeleteMaintenanceRequest(ctx context.Context, id string) error {
	if err := uc.dataRepo.DeleteMaintenanceRequest(ctx, id); err != nil {
		uc.logger.Error("Failed to delete maintenance request", zap.String("id", id), zap.Error(err))
		return errors.ErrUpstreamUnavailable
	}

	uc.store.DeleteMaintenanceRequest(id)
	uc.publishChange(ctx, domain.CollectionMaintenance, id, domain.ChangeActionDeleted)
	return nil
}

// --- payments ---

func (uc *EntityUseCase) RefreshPayments(ctx context.Context) ([]domain.Payment, error) {
	return refreshCollection(ctx, uc, domain.CollectionPayments, uc.dataRepo.ListPayments, uc.store.SetPayments)
}

func (uc *EntityUseCase) CreatePayment(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	created, err := uc.dataRepo.CreatePayment(ctx, p)
	if err != nil {
		uc.logger.Error("Failed to create payment", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.AddPayment(*created)
	uc.publishChange(ctx, domain.CollectionPayments, created.ID, domain.ChangeActionCreated)
	return created, nil
}

func (uc *EntityUseCase) UpdatePayment(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	updated, err := uc.dataRepo.UpdatePayment(ctx, p)
	if err != nil {
		uc.logger.Error("Failed to update payment", zap.String("id", p.ID), zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.UpdatePayment(*updated)
	uc.publishChange(ctx, domain.CollectionPayments, updated.ID, domain.ChangeActionUpdated)
	return updated, nil
}

func (uc *EntityUseCase) DeletePayment(ctx context.Context, id string) error {
	if err := uc.dataRepo.DeletePayment(ctx, id); err != nil {
		uc.logger.Error("Failed to delete payment", zap.String("id", id), zap.Error(err))
		return errors.ErrUpstreamUnavailable
	}

	uc.store.DeletePayment(id)
	uc.publishChange(ctx, domain.CollectionPayments, id, domain.ChangeActionDeleted)
	return nil
}

// --- messages ---

func (uc *EntityUseCase) RefreshMessages(ctx context.Context) ([]domain.Message, error) {
	return refreshCollection(ctx, uc, domain.CollectionMessages, uc.dataRepo.ListMessages, uc.store.SetMessages)
}

func (uc *EntityUseCase) CreateMessage(ctx context.Context, m domain.Message) (*domain.Message, error) {
	created, err := uc.dataRepo.CreateMessage(ctx, m)
	if err != nil {
		uc.logger.Error("Failed to create message", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.AddMessage(*created)
	uc.publishChange(ctx, domain.CollectionMessages, created.ID, domain.ChangeActionCreated)
	return created, nil
}

func (uc *EntityUseCase) UpdateMessage(ctx context.Context, m domain.Message) (*domain.Message, error) {
	updated, err := uc.dataRepo.UpdateMessage(ctx, m)
	if err != nil {
		uc.logger.Error("Failed to update message", zap.String("id", m.ID), zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.UpdateMessage(*updated)
	uc.publishChange(ctx, domain.CollectionMessages, updated.ID, domain.ChangeActionUpdated)
	return updated, nil
}

func (uc *EntityUseCase) DeleteMessage(ctx context.Context, id string) error {
	if err := uc.dataRepo.DeleteMessage(ctx, id); err != nil {
		uc.logger.Error("Failed to delete message", zap.String("id", id), zap.Error(err))
		return errors.ErrUpstreamUnavailable
	}

	uc.store.DeleteMessage(id)
	uc.publishChange(ctx, domain.CollectionMessages, id, domain.ChangeActionDeleted)
	return nil
}

// --- appointments ---

func (uc *EntityUseCase) RefreshAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return refreshCollection(ctx, uc, domain.CollectionAppointments, uc.dataRepo.ListAppointments, uc.store.SetAppointments)
}

func (uc *EntityUseCase) CreateAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	created, err := uc.dataRepo.CreateAppointment(ctx, a)
	if err != nil {
		uc.logger.Error("Failed to create appointment", zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.AddAppointment(*created)
	uc.publishChange(ctx, domain.CollectionAppointments, created.ID, domain.ChangeActionCreated)
	return created, nil
}

func (uc *EntityUseCase) UpdateAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	updated, err := uc.dataRepo.UpdateAppointment(ctx, a)
	if err != nil {
		uc.logger.Error("Failed to update appointment", zap.String("id", a.ID), zap.Error(err))
		return nil, errors.ErrUpstreamUnavailable
	}

	uc.store.UpdateAppointment(*updated)
	uc.publishChange(ctx, domain.CollectionAppointments, updated.ID, domain.ChangeActionUpdated)
	return updated, nil
}

func (uc *EntityUseCase) DeleteAppointment(ctx context.Context, id string) error {
	if err := uc.dataRepo.DeleteAppointment(ctx, id); err != nil {
		uc.logger.Error("Failed to delete appointment", zap.String("id", id), zap.Error(err))
		return errors.ErrUpstreamUnavailable
	}

	uc.store.DeleteAppointment(id)
	uc.publishChange(ctx, domain.CollectionAppointments, id, domain.ChangeActionDeleted)
	return nil
}
