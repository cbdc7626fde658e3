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

// PaymentHandler - payment record flows.
type PaymentHandler struct {
	entityUC *usecase.EntityUseCase
	store    *store.Store
	logger   *zap.Logger
}

func NewPaymentHandler(entityUC *usecase.EntityUseCase, st *store.Store, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		entityUC: entityUC,
		store:    st,
		logger:   logger,
	}
}

// List - GET /api/v1/payments?refresh=true
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) || len(h.store.Payments()) == 0 {
		if _, err := h.entityUC.RefreshPayments(c.Context()); err != nil {
			h.logger.Warn("Serving stale payments", zap.Error(err))
		}
	}

	items := h.store.Payments()
	return utils.SendSuccess(c, items, &utils.Meta{
		Total:   len(items),
		Loading: h.store.Loading(domain.CollectionPayments),
	})
}

// Create - POST /api/v1/payments
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var p domain.Payment
	if err := c.BodyParser(&p); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	created, err := h.entityUC.CreatePayment(c.Context(), p)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, created, nil)
}

// Update - PUT /api/v1/payments/:id
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var p domain.Payment
	if err := c.BodyParser(&p); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	p.ID = c.Params("id")

	updated, err := h.entityUC.UpdatePayment(c.Context(), p)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, updated, nil)
}

// Delete - DELETE /api/v1/payments/:id
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.entityUC.DeletePayment(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
