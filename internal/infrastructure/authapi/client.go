package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/property-admin/internal/config"
	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates the HTTP client for the remote authentication service.
func NewClient(cfg *config.AuthServiceConfig, logger *zap.Logger) repository.AuthRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone,omitempty"`
}

func (c *client) Login(ctx context.Context, email, password string) (*repository.AuthResult, error) {
	return c.post(ctx, "/api/v1/auth/login", loginPayload{Email: email, Password: password})
}

func (c *client) Register(ctx context.Context, user domain.User, password string) (*repository.AuthResult, error) {
	return c.post(ctx, "/api/v1/auth/register", registerPayload{
		Email:     user.Email,
		Password:  password,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Phone:     user.Phone,
	})
}

func (c *client) post(ctx context.Context, path string, payload interface{}) (*repository.AuthResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Auth service request failed",
			zap.String("path", path),
			zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("Auth service rejected request",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("auth service error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result repository.AuthResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
