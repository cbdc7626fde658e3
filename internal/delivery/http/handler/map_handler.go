package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-admin/internal/pkg/utils"
	"github.com/property-admin/internal/usecase"
	"github.com/property-admin/internal/usecase/dto"
)

// MapHandler - marker projection endpoints.
type MapHandler struct {
	markerUC *usecase.MarkerUseCase
	logger   *zap.Logger
}

func NewMapHandler(markerUC *usecase.MarkerUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		markerUC: markerUC,
		logger:   logger,
	}
}

// Markers - GET /api/v1/map/markers?properties=true&maintenance=true&appointments=true
// Every toggle defaults to visible.
func (h *MapHandler) Markers(c *fiber.Ctx) error {
	req := dto.MarkerRefreshRequest{
		ShowProperties:   c.QueryBool("properties", true),
		ShowMaintenance:  c.QueryBool("maintenance", true),
		ShowAppointments: c.QueryBool("appointments", true),
	}

	return utils.SendSuccess(c, h.markerUC.Refresh(req), nil)
}

// Activate - GET /api/v1/map/markers/:type/:id
func (h *MapHandler) Activate(c *fiber.Ctx) error {
	marker, err := h.markerUC.ActivateMarker(c.Params("type"), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"marker":   marker,
		"viewport": h.markerUC.Viewport(),
	}, nil)
}
