package handlers

import (
	"net/http"

	"homeservices/models"
)

// CreateQuoteHandler handles POST /api/quotes. Any statut sent by the client
// is dropped; new quotes are always pending.
func (h *Handler) CreateQuoteHandler(w http.ResponseWriter, r *http.Request) {
	in := &models.QuoteInput{}
	if err := decodeJSON(w, r, in); err != nil {
		writeError(w, r, err)
		return
	}
	in.Normalize()
	if err := h.Validate.Struct(in); err != nil {
		writeError(w, r, err)
		return
	}

	q, err := h.Store.CreateQuote(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *Handler) ListQuotesHandler(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Store.ListQuotes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (h *Handler) GetQuoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	q, err := h.Store.GetQuote(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// CreateContactHandler handles POST /api/contact.
func (h *Handler) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	in := &models.ContactInput{}
	if err := decodeJSON(w, r, in); err != nil {
		writeError(w, r, err)
		return
	}
	in.Normalize()
	if err := h.Validate.Struct(in); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.Store.CreateContact(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) ListContactsHandler(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Store.ListContacts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (h *Handler) GetContactHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.Store.GetContact(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
