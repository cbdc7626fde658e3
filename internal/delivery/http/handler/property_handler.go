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

// PropertyHandler - the property pages: reads serve the store, writes go
// through the entity usecase (remote service first, then store dispatch).
type PropertyHandler struct {
	entityUC *usecase.EntityUseCase
	store    *store.Store
	logger   *zap.Logger
}

// NewPropertyHandler - creation of a new PropertyHandler.
func NewPropertyHandler(entityUC *usecase.EntityUseCase, st *store.Store, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		entityUC: entityUC,
		store:    st,
		logger:   logger,
	}
}

// List - GET /api/v1/properties?refresh=true
// A failed refresh is logged and the last-known collection is served as-is.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) || len(h.store.Properties()) == 0 {
		if _, err := h.entityUC.RefreshProperties(c.Context()); err != nil {
			h.logger.Warn("Serving stale properties", zap.Error(err))
		}
	}

	items := h.store.Properties()
	return utils.SendSuccess(c, items, &utils.Meta{
		Total:   len(items),
		Loading: h.store.Loading(domain.CollectionProperties),
	})
}

// Create - POST /api/v1/properties
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var p domain.Property
	if err := c.BodyParser(&p); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	// Properties need coordinates to be placeable on the map.
	if !utils.ValidateCoordinates(p.Latitude, p.Longitude) {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "latitude/longitude out of range",
		}))
	}

	created, err := h.entityUC.CreateProperty(c.Context(), p)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, created, nil)
}

// Update - PUT /api/v1/properties/:id
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var p domain.Property
	if err := c.BodyParser(&p); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	p.ID = c.Params("id")

	if !utils.ValidateCoordinates(p.Latitude, p.Longitude) {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "latitude/longitude out of range",
		}))
	}

	updated, err := h.entityUC.UpdateProperty(c.Context(), p)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, updated, nil)
}

// Delete - DELETE /api/v1/properties/:id
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	if err := h.entityUC.DeleteProperty(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
