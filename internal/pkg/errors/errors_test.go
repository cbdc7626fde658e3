package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/property-admin/internal/pkg/errors"
)

func TestAppError_Error(t *testing.T) {
	err := errors.New("TEST_CODE", "something broke", 500)
	assert.Equal(t, "TEST_CODE: something broke", err.Error())
}

func TestAppError_WithDetails(t *testing.T) {
	t.Run("carries the details", func(t *testing.T) {
		err := errors.ErrValidationFailed.WithDetails(map[string]interface{}{
			"field": "email",
		})
		assert.Equal(t, errors.ErrValidationFailed.Code, err.Code)
		assert.Equal(t, "email", err.Details["field"])
	})

	t.Run("never mutates the shared sentinel", func(t *testing.T) {
		_ = errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"leak": true,
		})
		assert.NotContains(t, errors.ErrInvalidRequest.Details, "leak")
	})
}
