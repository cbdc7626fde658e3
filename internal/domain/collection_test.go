package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCollection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"properties", CollectionProperties, true},
		{"tenants", CollectionTenants, true},
		{"maintenance", CollectionMaintenance, true},
		{"payments", CollectionPayments, true},
		{"messages", CollectionMessages, true},
		{"appointments", CollectionAppointments, true},
		{"unknown name", "boundaries", false},
		{"case sensitive", "Properties", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidCollection(tt.input))
		})
	}
}

func TestValidMarkerType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"property", "property", true},
		{"maintenance", "maintenance", true},
		{"appointment", "appointment", true},
		{"tenant is not a marker source", "tenant", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidMarkerType(tt.input))
		})
	}
}
