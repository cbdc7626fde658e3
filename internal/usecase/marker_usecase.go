package usecase

import (
	"sync"

	"go.uber.org/zap"

	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/pkg/errors"
	"github.com/property-admin/internal/pkg/utils"
	"github.com/property-admin/internal/store"
	"github.com/property-admin/internal/usecase/dto"
)

// viewportPadding expands the fitted bounding box by this factor of its span
// on every side.
const viewportPadding = 0.15

// MarkerUseCase derives the map marker set from the property, maintenance
// and appointment collections and keeps the last fitted viewport. The marker
// set itself is never stored: it is a pure function of the current
// collections and the caller's visibility toggles, so it cannot drift from
// its sources. Only the viewport survives between refreshes, because an
// empty projection leaves the map where it was.
type MarkerUseCase struct {
	store  *store.Store
	logger *zap.Logger

	mu       sync.Mutex
	viewport domain.Viewport
}

// NewMarkerUseCase - creation of a new MarkerUseCase. The initial viewport
// is used until the first non-empty projection.
func NewMarkerUseCase(st *store.Store, logger *zap.Logger, initial domain.Viewport) *MarkerUseCase {
	return &MarkerUseCase{
		store:    st,
		logger:   logger,
		viewport: initial,
	}
}

// ProjectMarkers builds the full marker set from scratch. Pure and total:
// identical inputs always yield an identical marker set and no input is
// mutated.
//
// Resolution misses are expected steady-state behavior, not errors: a
// maintenance request or appointment whose property id does not resolve
// against the given properties is silently omitted, as is an appointment
// with no property id at all.
func ProjectMarkers(
	properties []domain.Property,
	maintenance []domain.MaintenanceRequest,
	appointments []domain.Appointment,
) []domain.MapMarker {
	markers := make([]domain.MapMarker, 0, len(properties)+len(maintenance)+len(appointments))

	// Id-indexed join map, built once per projection. First occurrence wins
	// under duplicate ids, matching the store's lookup policy.
	byID := make(map[string]domain.Property, len(properties))
	for _, p := range properties {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}

	for _, p := range properties {
		markers = append(markers, domain.MapMarker{
			ID:       p.ID,
			Position: domain.Point{Lat: p.Latitude, Lon: p.Longitude},
			Title:    p.Name,
			Type:     domain.MarkerTypeProperty,
			Data:     p,
		})
	}

	for _, m := range maintenance {
		p, ok := byID[m.PropertyID]
		if !ok {
			continue
		}
		markers = append(markers, domain.MapMarker{
			ID:       m.ID,
			Position: domain.Point{Lat: p.Latitude, Lon: p.Longitude},
			Title:    m.Title,
			Type:     domain.MarkerTypeMaintenance,
			Data:     m,
		})
	}

	for _, a := range appointments {
		if a.PropertyID == nil {
			continue
		}
		p, ok := byID[*a.PropertyID]
		if !ok {
			continue
		}
		markers = append(markers, domain.MapMarker{
			ID:       a.ID,
			Position: domain.Point{Lat: p.Latitude, Lon: p.Longitude},
			Title:    a.Title,
			Type:     domain.MarkerTypeAppointment,
			Data:     a,
		})
	}

	return markers
}

// Refresh recomputes the marker set under the given visibility toggles and
// fits the viewport around it. Full replace, not a diff: previous markers
// are discarded. An empty marker set leaves the viewport unchanged from its
// last value.
func (uc *MarkerUseCase) Refresh(req dto.MarkerRefreshRequest) *dto.MarkerSetResponse {
	var (
		properties   []domain.Property
		maintenance  []domain.MaintenanceRequest
		appointments []domain.Appointment
	)

	if req.ShowProperties {
		properties = uc.store.Properties()
	}
	if req.ShowMaintenance {
		maintenance = uc.store.MaintenanceRequests()
	}
	if req.ShowAppointments {
		appointments = uc.store.Appointments()
	}

	markers := ProjectMarkers(properties, maintenance, appointments)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(markers) > 0 {
		uc.viewport = fitViewport(markers)
	}

	uc.logger.Debug("Marker set refreshed",
		zap.Int("markers", len(markers)),
		zap.Bool("properties", req.ShowProperties),
		zap.Bool("maintenance", req.ShowMaintenance),
		zap.Bool("appointments", req.ShowAppointments))

	return &dto.MarkerSetResponse{
		Markers:  markers,
		Viewport: uc.viewport,
	}
}

// ActivateMarker resolves a clicked marker back to its full payload (id,
// position, title, type, source entity). The usecase keeps no selection
// state; the caller owns it.
func (uc *MarkerUseCase) ActivateMarker(markerType, id string) (*domain.MapMarker, error) {
	if !domain.ValidMarkerType(markerType) {
		return nil, errors.ErrInvalidMarkerType
	}

	markers := ProjectMarkers(
		uc.store.Properties(),
		uc.store.MaintenanceRequests(),
		uc.store.Appointments(),
	)

	// Marker ids are unique only within their type partition.
	for i := range markers {
		if markers[i].Type == domain.MarkerType(markerType) && markers[i].ID == id {
			return &markers[i], nil
		}
	}

	return nil, errors.ErrMarkerNotFound
}

// Viewport returns the last fitted viewport.
func (uc *MarkerUseCase) Viewport() domain.Viewport {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.viewport
}

// fitViewport bounds all markers with fixed padding and derives center/zoom.
// Callers guarantee a non-empty marker set.
func fitViewport(markers []domain.MapMarker) domain.Viewport {
	minLat, minLon := markers[0].Position.Lat, markers[0].Position.Lon
	maxLat, maxLon := minLat, minLon

	for _, m := range markers[1:] {
		if m.Position.Lat < minLat {
			minLat = m.Position.Lat
		}
		if m.Position.Lat > maxLat {
			maxLat = m.Position.Lat
		}
		if m.Position.Lon < minLon {
			minLon = m.Position.Lon
		}
		if m.Position.Lon > maxLon {
			maxLon = m.Position.Lon
		}
	}

	minLat, minLon, maxLat, maxLon = utils.PadBounds(minLat, minLon, maxLat, maxLon, viewportPadding)

	return domain.Viewport{
		Center: domain.Point{
			Lat: (minLat + maxLat) / 2,
			Lon: (minLon + maxLon) / 2,
		},
		Zoom: utils.ZoomForBounds(minLat, minLon, maxLat, maxLon),
		Bounds: domain.BoundingBox{
			MinLat: minLat,
			MinLon: minLon,
			MaxLat: maxLat,
			MaxLon: maxLon,
		},
	}
}
