package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feywood/tomekeeper/internal/schema"
	"github.com/feywood/tomekeeper/internal/storage"
)

func (h *Handler) listClasses(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListClasses(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (h *Handler) createClass(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.Classes.ValidateNew(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.CreateClass(r.Context(), storage.Class{
		Name:        schema.Text(fields, "name"),
		Description: schema.Text(fields, "description"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) getClass(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.GetClass(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) updateClass(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.Classes.ValidateUpdate(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.UpdateClass(r.Context(), chi.URLParam(r, "name"),
		schema.Classes.Normalize(fields))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) deleteClass(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteClass(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
