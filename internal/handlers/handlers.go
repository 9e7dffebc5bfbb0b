package handlers

import (
	"context"
	"net/http"

	"homeservices/internal/logger"
	"homeservices/internal/validation"
)

// Handler serves the HTTP API on top of a StorageInterface.
type Handler struct {
	Store    StorageInterface
	Validate *validation.Validator
}

// NewHandler creates a Handler.
func NewHandler(store StorageInterface) *Handler {
	return &Handler{Store: store, Validate: validation.New()}
}

// PingHandler answers "ok" for liveness checks.
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Pinger is implemented by stores that can report database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers 200 when the database is reachable and 503
// otherwise. Stores without a Ping method are always healthy.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if p, ok := h.Store.(Pinger); ok {
		if err := p.Ping(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error().Err(err).Msg("health check failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// NotFoundHandler is the JSON 404 for unmatched routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusNotFound, "Not found.")
}

// MethodNotAllowedHandler is the JSON 405 for known paths.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, "Method \""+r.Method+"\" not allowed.")
}
