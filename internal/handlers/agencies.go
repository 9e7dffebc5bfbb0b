package handlers

import (
	"context"
	"fmt"
	"net/http"

	"homeservices/internal/apperrors"
	"homeservices/internal/query"
	"homeservices/models"
)

// ListAgenciesHandler handles GET /api/agencies.
func (h *Handler) ListAgenciesHandler(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.Store.ListAgencies(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agencies)
}

// AgencyStatsHandler handles GET /api/agencies/stats.
func (h *Handler) AgencyStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Store.AgencyStats(r.Context(), query.Parse(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) GetAgencyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	a, err := h.Store.GetAgency(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) CreateAgencyHandler(w http.ResponseWriter, r *http.Request) {
	in := &models.AgencyInput{}
	if err := h.bindAgency(w, r, in); err != nil {
		writeError(w, r, err)
		return
	}
	a, err := h.Store.CreateAgency(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// UpdateAgencyHandler handles PUT and PATCH. The service links change only
// when services_ids is sent.
func (h *Handler) UpdateAgencyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	current, err := h.Store.GetAgency(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	in := &models.AgencyInput{}
	if r.Method == http.MethodPatch {
		in = models.AgencyInputFrom(current)
	}
	if err := h.bindAgency(w, r, in); err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.Store.UpdateAgency(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) bindAgency(w http.ResponseWriter, r *http.Request, in *models.AgencyInput) error {
	if err := decodeJSON(w, r, in); err != nil {
		return err
	}
	in.Normalize()
	if err := h.Validate.Struct(in); err != nil {
		return err
	}
	return h.checkServiceIDs(r.Context(), in.UniqueServiceIDs())
}

// checkServiceIDs rejects links to services that do not exist.
func (h *Handler) checkServiceIDs(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	missing, err := h.Store.MissingServiceIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(missing))
	for _, id := range missing {
		msgs = append(msgs, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
	}
	return apperrors.NewValidation(map[string][]string{"services_ids": msgs})
}
