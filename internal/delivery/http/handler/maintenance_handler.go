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

// MaintenanceHandler - maintenance request flows. A request whose property
// reference dangles is still listed; only the map omits it.
type MaintenanceHandler struct {
	entityUC *usecase.EntityUseCase
	store    *store.Store
	logger   *zap.Logger
}

func NewMaintenanceHandler(entityUC *usecase.EntityUseCase, st *store.Store, logger *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		entityUC: entityUC,
		store:    st,
		logger:   logger,
	}
}

// List - GET /api/v1/maintenance-requests?refresh=true
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) || len(h.store.MaintenanceRequests()) == 0 {
		if _, err := h.entityUC.RefreshMaintenanceRequests(c.Context()); err != nil {
			h.logger.Warn("Serving stale maintenance requests", zap.Error(err))
		}
	}

	items := h.store.MaintenanceRequests()
	return utils.SendSuccess(c, items, &utils.Meta{
		Total:   len(items),
		Loading: h.store.Loading(domain.CollectionMaintenance),
	})
}

// Create - POST /api/v1/maintenance-requests
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var m domain.MaintenanceRequest
	if err := c.BodyParser(&m); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	created, err := h.entityUC.CreateMaintenanceRequest(c.Context(), m)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, created, nil)
}

// Update - PUT /api/v1/maintenance-requests/:id
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	var m domain.MaintenanceRequest
	if err := c.BodyParser(&m); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	m.ID = c.Params("id")

	updated, err := h.entityUC.UpdateMaintenanceRequest(c.Context(), m)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, updated, nil)
}

// Delete - DELETE /api/v1/maintenance-requests/:id
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.entityUC.DeleteMaintenanceRequest(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
