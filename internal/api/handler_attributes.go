package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feywood/tomekeeper/internal/schema"
	"github.com/feywood/tomekeeper/internal/storage"
)

func (h *Handler) listAttributeNames(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListAttributeNames(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (h *Handler) createAttributeName(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.AttributeNames.ValidateNew(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.CreateAttributeName(r.Context(), storage.AttributeName{
		Name:         schema.Text(fields, "name"),
		Abbreviation: schema.Text(fields, "abbreviation"),
		Description:  schema.Text(fields, "description"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) getAttributeName(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.GetAttributeName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) updateAttributeName(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.AttributeNames.ValidateUpdate(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.UpdateAttributeName(r.Context(), chi.URLParam(r, "name"),
		schema.AttributeNames.Normalize(fields))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) deleteAttributeName(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAttributeName(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
