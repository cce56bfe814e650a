package handlers

import (
	"Mediabox/internal/apperr"
	"errors"
	"net/http"
)

// errorResponse maps a service error onto an HTTP status and a structured
// body. Store errors are deliberately opaque to the client; the services
// already logged the cause.
func errorResponse(err error) (int, map[string]interface{}) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		return http.StatusBadRequest, map[string]interface{}{"error": err.Error(), "kind": "invalid_input"}
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, map[string]interface{}{"error": err.Error(), "kind": "not_found"}
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, map[string]interface{}{"error": err.Error(), "kind": "conflict"}
	default:
		return http.StatusInternalServerError, map[string]interface{}{"error": "storage failure", "kind": "store_error"}
	}
}
