package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/property-admin/internal/config"
	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/domain/repository"
)

func testConfig(baseURL string) *config.AuthServiceConfig {
	return &config.AuthServiceConfig{
		BaseURL:        baseURL,
		RequestTimeout: 5 * time.Second,
	}
}

func TestClient_Login(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful login", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "admin@example.com", payload["email"])
			assert.Equal(t, "secret", payload["password"])

			json.NewEncoder(w).Encode(repository.AuthResult{
				Token: "tok-1",
				User:  domain.User{ID: "u1", Email: "admin@example.com"},
			})
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		result, err := c.Login(context.Background(), "admin@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", result.Token)
		assert.Equal(t, "u1", result.User.ID)
	})

	t.Run("rejected credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
		}))
		defer server.Close()

		c := NewClient(testConfig(server.URL), logger)

		_, err := c.Login(context.Background(), "admin@example.com", "wrong")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}

func TestClient_Register(t *testing.T) {
	logger := zap.NewNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "new@example.com", payload["email"])
		assert.Equal(t, "manager", payload["role"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(repository.AuthResult{
			Token: "tok-new",
			User:  domain.User{ID: "u2", Email: "new@example.com", Role: domain.RoleManager},
		})
	}))
	defer server.Close()

	c := NewClient(testConfig(server.URL), logger)

	result, err := c.Register(context.Background(), domain.User{
		Email:     "new@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      domain.RoleManager,
	}, "password1")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", result.Token)
	assert.Equal(t, domain.RoleManager, result.User.Role)
}
