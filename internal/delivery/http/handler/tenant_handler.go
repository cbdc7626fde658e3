package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/pkg/errors"
	"github.com/property-admin/internal/pkg/utils"
	"github.com/property-admin/internal/store"
	"github.com/property-admin/internal/usecase"
)

// TenantHandler - tenant list/add/edit/delete flows.
type TenantHandler struct {
	entityUC *usecase.EntityUseCase
	store    *store.Store
	logger   *zap.Logger
}

func NewTenantHandler(entityUC *usecase.EntityUseCase, st *store.Store, logger *zap.Logger) *TenantHandler {
	return &TenantHandler{
		entityUC: entityUC,
		store:    st,
		logger:   logger,
	}
}

// List - GET /api/v1/tenants?refresh=true
func (h *TenantHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) || len(h.store.Tenants()) == 0 {
		if _, err := h.entityUC.RefreshTenants(c.Context()); err != nil {
			h.logger.Warn("Serving stale tenants", zap.Error(err))
		}
	}

	items := h.store.Tenants()
	return utils.SendSuccess(c, items, &utils.Meta{
		Total:   len(items),
		Loading: h.store.Loading(domain.CollectionTenants),
	})
}

// Create - POST /api/v1/tenants
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	var t domain.Tenant
	if err := c.BodyParser(&t); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	created, err := h.entityUC.CreateTenant(c.Context(), t)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, created, nil)
}

// Update - PUT /api/v1/tenants/:id
func (h *TenantHandler) Update(c *fiber.Ctx) error {
	var t domain.Tenant
	if err := c.BodyParser(&t); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	t.ID = c.Params("id")

	updated, err := h.entityUC.UpdateTenant(c.Context(), t)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, updated, nil)
}

// Delete - DELETE /api/v1/tenants/:id
func (h *TenantHandler) Delete(c *fiber.Ctx) error {
	if err := h.entityUC.DeleteTenant(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
