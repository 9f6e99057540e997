package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feywood/tomekeeper/internal/schema"
	"github.com/feywood/tomekeeper/internal/storage"
)

func (h *Handler) listSkills(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListSkills(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (h *Handler) createSkill(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.Skills.ValidateNew(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.CreateSkill(r.Context(), storage.Skill{
		Name:        schema.Text(fields, "name"),
		Attribute:   schema.Text(fields, "attribute"),
		Description: schema.Text(fields, "description"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) getSkill(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.GetSkill(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) updateSkill(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.Skills.ValidateUpdate(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.UpdateSkill(r.Context(), chi.URLParam(r, "name"),
		schema.Skills.Normalize(fields))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) deleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSkill(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
