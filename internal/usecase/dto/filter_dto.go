package dto

// FilterRequest wraps the opaque filter object for a collection. The server
// stores it verbatim; interpretation belongs to whoever reads it back.
type FilterRequest struct {
	Filter map[string]interface{} `json:"filter"`
}

type FilterResponse struct {
	Collection string                 `json:"collection"`
	Filter     map[string]interface{} `json:"filter"`
}
