package handlers

import (
	"net/http"

	"homeservices/internal/query"
	"homeservices/models"
)

// ListServicesHandler handles GET /api/services.
func (h *Handler) ListServicesHandler(w http.ResponseWriter, r *http.Request) {
	services, err := h.Store.ListServices(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

// ServiceStatsHandler handles GET /api/services/stats. Limit and ordering
// are ignored.
func (h *Handler) ServiceStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.ServiceStats(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	svc, err := h.Store.GetService(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *Handler) CreateServiceHandler(w http.ResponseWriter, r *http.Request) {
	in := &models.ServiceInput{}
	if err := h.bindService(w, r, in); err != nil {
		writeError(w, r, err)
		return
	}
	svc, err := h.Store.CreateService(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT (full replace) and PATCH (fields sent are
// merged over the stored record).
func (h *Handler) UpdateServiceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	current, err := h.Store.GetService(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	in := &models.ServiceInput{}
	if r.Method == http.MethodPatch {
		in = models.ServiceInputFrom(current)
	}
	if err := h.bindService(w, r, in); err != nil {
		writeError(w, r, err)
		return
	}

	svc, err := h.Store.UpdateService(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *Handler) bindService(w http.ResponseWriter, r *http.Request, in *models.ServiceInput) error {
	if err := decodeJSON(w, r, in); err != nil {
		return err
	}
	in.Normalize()
	return h.Validate.Struct(in)
}
