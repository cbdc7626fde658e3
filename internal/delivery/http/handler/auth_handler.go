package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/property-admin/internal/pkg/errors"
	"github.com/property-admin/internal/pkg/utils"
	"github.com/property-admin/internal/pkg/validator"
	"github.com/property-admin/internal/usecase"
	"github.com/property-admin/internal/usecase/dto"
)

// AuthHandler - login/register/logout endpoints proxying the remote
// authentication service.
type AuthHandler struct {
	sessionUC *usecase.SessionUseCase
	logger    *zap.Logger
}

// NewAuthHandler - creation of a new AuthHandler.
func NewAuthHandler(sessionUC *usecase.SessionUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		sessionUC: sessionUC,
		logger:    logger,
	}
}

// Login - POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	result, err := h.sessionUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Register - POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	result, err := h.sessionUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Logout - POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessionUC.Logout(c.Context(), bearerToken(c)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"logged_out": true}, nil)
}

// Me - GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return utils.SendError(c, errors.ErrSessionNotFound)
	}

	user, err := h.sessionUC.CurrentIdentity(c.Context(), token)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, user, nil)
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
