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

// AppointmentHandler - calendar flows.
type AppointmentHandler struct {
	entityUC *usecase.EntityUseCase
	store    *store.Store
	logger   *zap.Logger
}

func NewAppointmentHandler(entityUC *usecase.EntityUseCase, st *store.Store, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		entityUC: entityUC,
		store:    st,
		logger:   logger,
	}
}

// List - GET /api/v1/appointments?refresh=true
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) || len(h.store.Appointments()) == 0 {
		if _, err := h.entityUC.RefreshAppointments(c.Context()); err != nil {
			h.logger.Warn("Serving stale appointments", zap.Error(err))
		}
	}

	items := h.store.Appointments()
	return utils.SendSuccess(c, items, &utils.Meta{
		Total:   len(items),
		Loading: h.store.Loading(domain.CollectionAppointments),
	})
}

// Create - POST /api/v1/appointments
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var a domain.Appointment
	if err := c.BodyParser(&a); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	created, err := h.entityUC.CreateAppointment(c.Context(), a)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, created, nil)
}

// Update - PUT /api/v1/appointments/:id
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var a domain.Appointment
	if err := c.BodyParser(&a); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	a.ID = c.Params("id")

	updated, err := h.entityUC.UpdateAppointment(c.Context(), a)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, updated, nil)
}

// Delete - DELETE /api/v1/appointments/:id
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.entityUC.DeleteAppointment(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
