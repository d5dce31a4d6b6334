package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"roomdesk-backend-go/internal/services"
	"roomdesk-backend-go/internal/store"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// writeStoreError maps classified storage and service failures to their HTTP
// shape. Unclassified errors become a plain 500 so internal error text never
// reaches the client.
func writeStoreError(w http.ResponseWriter, err error) {
	var serviceErr services.ServiceError
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrRoomInUse):
		WriteError(w, http.StatusBadRequest, "Room has bookings and cannot be deleted")
	case errors.Is(err, store.ErrBookingConflict):
		WriteError(w, http.StatusConflict, "Booking conflicts with an existing booking")
	case errors.Is(err, store.ErrDuplicateUsername):
		WriteError(w, http.StatusConflict, "Username already exists")
	case errors.As(err, &serviceErr):
		WriteError(w, serviceErr.Status, serviceErr.Message)
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
