package dto

import "github.com/property-admin/internal/domain"

// MarkerRefreshRequest carries the caller-held visibility toggles. A
// disabled type contributes no markers; the toggles themselves are not state
// of the map layer.
type MarkerRefreshRequest struct {
	ShowProperties   bool `json:"show_properties"`
	ShowMaintenance  bool `json:"show_maintenance"`
	ShowAppointments bool `json:"show_appointments"`
}

type MarkerSetResponse struct {
	Markers  []domain.MapMarker `json:"markers"`
	Viewport domain.Viewport    `json:"viewport"`
}
