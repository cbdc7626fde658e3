package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-admin/internal/pkg/errors"
	"github.com/property-admin/internal/pkg/utils"
	"github.com/property-admin/internal/pkg/validator"
	"github.com/property-admin/internal/usecase"
	"github.com/property-admin/internal/usecase/dto"
)

// ChatHandler - assistant conversation endpoints.
type ChatHandler struct {
	chatUC *usecase.ChatUseCase
	logger *zap.Logger
}

func NewChatHandler(chatUC *usecase.ChatUseCase, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
		logger: logger,
	}
}

// Send - POST /api/v1/chat/conversations/:id/messages
// The user entry is returned immediately; the reply lands in the transcript
// after the typing delay.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	var req dto.ChatSendRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	msg := h.chatUC.SendMessage(c.Params("id"), req.Text)
	return utils.SendSuccess(c, msg, nil)
}

// Transcript - GET /api/v1/chat/conversations/:id
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	id := c.Params("id")
	messages, err := h.chatUC.Transcript(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ChatTranscriptResponse{
		ConversationID: id,
		Messages:       messages,
	}, nil)
}

// Close - DELETE /api/v1/chat/conversations/:id
// Closing cancels any pending replies; closing an unknown conversation is a
// no-op.
func (h *ChatHandler) Close(c *fiber.Ctx) error {
	h.chatUC.CloseConversation(c.Params("id"))
	return utils.SendSuccess(c, fiber.Map{"closed": true}, nil)
}
