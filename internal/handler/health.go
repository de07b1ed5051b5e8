package handler

import (
	"net/http"

	"github.com/userboard/userboard/internal/store"
)

// StateReporter exposes the connector's current connection state.
// The health endpoint reads this state only; it never issues a live
// round trip to the store.
type StateReporter interface {
	State() store.ConnState
}

// HealthHandler manages the health check endpoint.
type HealthHandler struct {
	store StateReporter
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for store if it is not yet initialized; the endpoint then
// reports the database as disconnected.
func NewHealthHandler(st StateReporter) *HealthHandler {
	return &HealthHandler{store: st}
}

// HealthResponse represents the health check response.
// DatabaseState carries the raw connection-state value
// (0 disconnected, 1 connected, 2 connecting, 3 disconnecting).
type HealthResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Database      string `json:"database"`
	DatabaseState int    `json:"databaseState"`
}

// Health reports process liveness and store connectivity.
// It always returns 200; a down store shows up in the database field,
// not in the status code.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	state := store.StateDisconnected
	if h.store != nil {
		state = h.store.State()
	}

	database := "disconnected"
	if state == store.StateConnected {
		database = "connected"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "ok",
		Message:       "Backend is running",
		Database:      database,
		DatabaseState: int(state),
	})
}
