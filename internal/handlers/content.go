package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"homeservices/models"
)

// ListContentHandler handles GET /api/content.
func (h *Handler) ListContentHandler(w http.ResponseWriter, r *http.Request) {
	blocks, err := h.Store.ListContentBlocks(r.Context(), "")
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, blocks)
}

// ContentByTypeHandler handles GET /api/content/by_type?type=X. A missing
// or unknown type yields an empty list.
func (h *Handler) ContentByTypeHandler(w http.ResponseWriter, r *http.Request) {
	blockType := strings.TrimSpace(r.URL.Query().Get("type"))
	if blockType == "" {
		writeJSON(w, http.StatusOK, []models.ContentBlock{})
		return
	}
	blocks, err := h.Store.ListContentBlocks(r.Context(), blockType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, blocks)
}

// ContentTypeHandler handles GET /api/content/{type}: the first active
// block of that type.
func (h *Handler) ContentTypeHandler(w http.ResponseWriter, r *http.Request) {
	b, err := h.Store.GetContentBlockByType(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
