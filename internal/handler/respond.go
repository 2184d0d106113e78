package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-intranet-app/internal/cache"
	"go-intranet-app/internal/middleware"
	"go-intranet-app/internal/service"
)

// User-facing conflict messages for category deletion. The UI shows these
// verbatim, so the wording is fixed.
const (
	msgCategoryHasDocuments     = "Kan inte ta bort mappen - den innehåller dokument. Flytta eller ta bort dokumenten först."
	msgCategoryHasSubcategories = "Kan inte ta bort mappen - den innehåller undermappar. Ta bort undermapparna först."
)

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, code int, v interface{}) *middleware.AppError {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return &middleware.AppError{Err: err, Message: "Failed to encode response", Code: http.StatusInternalServerError}
	}
	return nil
}

// appError maps domain errors onto HTTP status codes. Unclassified errors
// become a 500 with the handler's fallback message.
func appError(err error, fallback string) *middleware.AppError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return &middleware.AppError{Err: err, Message: err.Error(), Code: http.StatusBadRequest}
	case errors.Is(err, service.ErrNotFound):
		return &middleware.AppError{Err: err, Message: "Not found", Code: http.StatusNotFound}
	case errors.Is(err, service.ErrCategoryNotEmpty):
		return &middleware.AppError{Err: err, Message: msgCategoryHasDocuments, Code: http.StatusConflict}
	case errors.Is(err, service.ErrCategoryHasChildren):
		return &middleware.AppError{Err: err, Message: msgCategoryHasSubcategories, Code: http.StatusConflict}
	case errors.Is(err, service.ErrStorage):
		return &middleware.AppError{Err: err, Message: "Storage unavailable", Code: http.StatusBadGateway}
	case errors.Is(err, cache.ErrTimeout):
		return &middleware.AppError{Err: err, Message: "Backend timeout", Code: http.StatusGatewayTimeout}
	default:
		return &middleware.AppError{Err: err, Message: fallback, Code: http.StatusInternalServerError}
	}
}

// decodeJSON reads a JSON request body into dst.
func decodeJSON(r *http.Request, dst interface{}) *middleware.AppError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &middleware.AppError{Err: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}
	return nil
}
