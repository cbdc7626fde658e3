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

// MessageHandler - mailbox flows.
type MessageHandler struct {
	entityUC *usecase.EntityUseCase
	store    *store.Store
	logger   *zap.Logger
}

func NewMessageHandler(entityUC *usecase.EntityUseCase, st *store.Store, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		entityUC: entityUC,
		store:    st,
		logger:   logger,
	}
}

// List - GET /api/v1/messages?refresh=true
func (h *MessageHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) || len(h.store.Messages()) == 0 {
		if _, err := h.entityUC.RefreshMessages(c.Context()); err != nil {
			h.logger.Warn("Serving stale messages", zap.Error(err))
		}
	}

	items := h.store.Messages()
	return utils.SendSuccess(c, items, &utils.Meta{
		Total:   len(items),
		Loading: h.store.Loading(domain.CollectionMessages),
	})
}

// Create - POST /api/v1/messages
func (h *MessageHandler) Create(c *fiber.Ctx) error {
	var m domain.Message
	if err := c.BodyParser(&m); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	created, err := h.entityUC.CreateMessage(c.Context(), m)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, created, nil)
}

// Update - PUT /api/v1/messages/:id (marking read, mostly)
func (h *MessageHandler) Update(c *fiber.Ctx) error {
	var m domain.Message
	if err := c.BodyParser(&m); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	m.ID = c.Params("id")

	updated, err := h.entityUC.UpdateMessage(c.Context(), m)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, updated, nil)
}

// Delete - DELETE /api/v1/messages/:id
func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	if err := h.entityUC.DeleteMessage(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
