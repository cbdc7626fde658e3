package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Request payload failed validation",
		http.StatusBadRequest,
	)

	ErrPasswordMismatch = New(
		"PASSWORD_MISMATCH",
		"Password and confirmation do not match",
		http.StatusBadRequest,
	)

	ErrInvalidCollection = New(
		"INVALID_COLLECTION",
		"Unknown entity collection",
		http.StatusBadRequest,
	)

	ErrInvalidMarkerType = New(
		"INVALID_MARKER_TYPE",
		"Unknown marker type",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Session does not exist or has expired",
		http.StatusUnauthorized,
	)

	ErrEntityNotFound = New(
		"ENTITY_NOT_FOUND",
		"Entity not found",
		http.StatusNotFound,
	)

	ErrMarkerNotFound = New(
		"MARKER_NOT_FOUND",
		"Marker not found",
		http.StatusNotFound,
	)

	ErrConversationNotFound = New(
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		http.StatusNotFound,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"Remote service request failed",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
