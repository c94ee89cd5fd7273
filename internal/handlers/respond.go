package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MosaabBleik/menu-service/internal/menu"
	"github.com/MosaabBleik/menu-service/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *MenuHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *menu.ValidationError
		notFoundErr   *menu.NotFoundError
		storageErr    *menu.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: validationErr.Error(),
		})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:   "menu item not found",
			Details: notFoundErr.ID,
		})
	case errors.As(err, &storageErr):
		h.logger().ErrorContext(r.Context(), "storage failure",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"op", storageErr.Op,
			"error", storageErr.Err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "failed to " + storageErr.Op + " menu item",
			Details: storageErr.Err.Error(),
		})
	default:
		h.logger().ErrorContext(r.Context(), "unexpected error",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
