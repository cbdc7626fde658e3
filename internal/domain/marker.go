package domain

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// MarkerType - source partition of a map marker. Marker ids are unique only
// within their type partition because the three source collections have
// independent id spaces.
type MarkerType string

const (
	MarkerTypeProperty    MarkerType = "property"
	MarkerTypeMaintenance MarkerType = "maintenance"
	MarkerTypeAppointment MarkerType = "appointment"
)

// ValidMarkerType reports whether t names one of the three partitions.
func ValidMarkerType(t string) bool {
	switch MarkerType(t) {
	case MarkerTypeProperty, MarkerTypeMaintenance, MarkerTypeAppointment:
		return true
	}
	return false
}

// MapMarker is a projection over the entity collections. It is recomputed on
// every change and never independently mutated; Data carries the source
// entity for the activation callback.
type MapMarker struct {
	ID       string      `json:"id"`
	Position Point       `json:"position"`
	Title    string      `json:"title"`
	Type     MarkerType  `json:"type"`
	Data     interface{} `json:"data"`
}

// Viewport is the visible map window. Bounds include the fit padding.
type Viewport struct {
	Center Point       `json:"center"`
	Zoom   float64     `json:"zoom"`
	Bounds BoundingBox `json:"bounds"`
}
