package propdata

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
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates the HTTP client for the remote property data service.
// The service persists all six entity collections; this process never
// stores them anywhere but memory.
func NewClient(cfg *config.PropertyDataConfig, logger *zap.Logger) repository.PropertyDataRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// do executes one request and decodes the JSON response into out (skipped
// when out is nil). Non-2xx responses become errors carrying the body.
func (c *client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Data service request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Data service returned error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return fmt.Errorf("data service error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// --- properties ---

func (c *client) ListProperties(ctx context.Context) ([]domain.Property, error) {
	var out []domain.Property
	if err := c.do(ctx, http.MethodGet, "/api/v1/properties", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateProperty(ctx context.Context, p domain.Property) (*domain.Property, error) {
	var out domain.Property
	if err := c.do(ctx, http.MethodPost, "/api/v1/properties", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdateProperty(ctx context.Context, p domain.Property) (*domain.Property, error) {
	var out domain.Property
	if err := c.do(ctx, http.MethodPut, "/api/v1/properties/"+p.ID, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/properties/"+id, nil, nil)
}

// --- tenants ---

func (c *client) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	var out []domain.Tenant
	if err := c.do(ctx, http.MethodGet, "/api/v1/tenants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error) {
	var out domain.Tenant
	if err := c.do(ctx, http.MethodPost, "/api/v1/tenants", t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdateTenant(ctx context.Context, t domain.Tenant) (*domain.Tenant, error) {
	var out domain.Tenant
	if err := c.do(ctx, http.MethodPut, "/api/v1/tenants/"+t.ID, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteTenant(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/tenants/"+id, nil, nil)
}

// --- maintenance requests ---

func (c *client) ListMaintenanceRequests(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	var out []domain.MaintenanceRequest
	if err := c.do(ctx, http.MethodGet, "/api/v1/maintenance-requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	var out domain.MaintenanceRequest
	if err := c.do(ctx, http.MethodPost, "/api/v1/maintenance-requests", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdateMaintenanceRequest(ctx context.Context, m domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	var out domain.MaintenanceRequest
	if err := c.do(ctx, http.MethodPut, "/api/v1/maintenance-requests/"+m.ID, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteMaintenanceRequest(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/maintenance-requests/"+id, nil, nil)
}

// --- payments ---

func (c *client) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := c.do(ctx, http.MethodGet, "/api/v1/payments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreatePayment(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	var out domain.Payment
	if err := c.do(ctx, http.MethodPost, "/api/v1/payments", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdatePayment(ctx context.Context, p domain.Payment) (*domain.Payment, error) {
	var out domain.Payment
	if err := c.do(ctx, http.MethodPut, "/api/v1/payments/"+p.ID, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeletePayment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/payments/"+id, nil, nil)
}

// --- messages ---

func (c *client) ListMessages(ctx context.Context) ([]domain.Message, error) {
	var out []domain.Message
	if err := c.do(ctx, http.MethodGet, "/api/v1/messages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateMessage(ctx context.Context, m domain.Message) (*domain.Message, error) {
	var out domain.Message
	if err := c.do(ctx, http.MethodPost, "/api/v1/messages", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdateMessage(ctx context.Context, m domain.Message) (*domain.Message, error) {
	var out domain.Message
	if err := c.do(ctx, http.MethodPut, "/api/v1/messages/"+m.ID, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/messages/"+id, nil, nil)
}

// --- appointments ---

func (c *client) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/v1/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *client) CreateAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	var out domain.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/v1/appointments", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) UpdateAppointment(ctx context.Context, a domain.Appointment) (*domain.Appointment, error) {
	var out domain.Appointment
	if err := c.do(ctx, http.MethodPut, "/api/v1/appointments/"+a.ID, a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) DeleteAppointment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/appointments/"+id, nil, nil)
}
