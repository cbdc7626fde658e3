package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/pkg/errors"
	"github.com/property-admin/internal/pkg/utils"
	"github.com/property-admin/internal/store"
	"github.com/property-admin/internal/usecase/dto"
)

// FilterHandler - per-collection filter objects. The filter is opaque to the
// server; it is stored and returned verbatim.
type FilterHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewFilterHandler(st *store.Store, logger *zap.Logger) *FilterHandler {
	return &FilterHandler{
		store:  st,
		logger: logger,
	}
}

// Get - GET /api/v1/collections/:name/filter
func (h *FilterHandler) Get(c *fiber.Ctx) error {
	name := c.Params("name")
	if !domain.ValidCollection(name) {
		return utils.SendError(c, errors.ErrInvalidCollection)
	}

	return utils.SendSuccess(c, dto.FilterResponse{
		Collection: name,
		Filter:     h.store.Filter(name),
	}, nil)
}

// Put - PUT /api/v1/collections/:name/filter
func (h *FilterHandler) Put(c *fiber.Ctx) error {
	name := c.Params("name")
	if !domain.ValidCollection(name) {
		return utils.SendError(c, errors.ErrInvalidCollection)
	}

	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	h.store.SetFilter(name, req.Filter)

	return utils.SendSuccess(c, dto.FilterResponse{
		Collection: name,
		Filter:     h.store.Filter(name),
	}, nil)
}

// Clear - DELETE /api/v1/collections/:name/filter
func (h *FilterHandler) Clear(c *fiber.Ctx) error {
	name := c.Params("name")
	if !domain.ValidCollection(name) {
		return utils.SendError(c, errors.ErrInvalidCollection)
	}

	h.store.ClearFilter(name)

	return utils.SendSuccess(c, dto.FilterResponse{
		Collection: name,
		Filter:     h.store.Filter(name),
	}, nil)
}
