package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feywood/tomekeeper/internal/schema"
)

func (h *Handler) listCharacterAttributes(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	records, err := h.store.ListCharacterAttributes(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (h *Handler) getCharacterAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.GetCharacterAttribute(r.Context(), id, chi.URLParam(r, "attribute"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// putCharacterAttribute stores an attribute score, inserting or replacing
// the value for the (character, attribute) pair.
func (h *Handler) putCharacterAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.CharacterAttributes.ValidateNew(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.SetCharacterAttribute(r.Context(), id,
		chi.URLParam(r, "attribute"), schema.Int(fields, "value"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) deleteCharacterAttribute(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.store.DeleteCharacterAttribute(r.Context(), id, chi.URLParam(r, "attribute")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCharacterSkills(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	records, err := h.store.ListCharacterSkills(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (h *Handler) getCharacterSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.GetCharacterSkill(r.Context(), id, chi.URLParam(r, "skill"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// putCharacterSkill stores a skill rating, inserting or replacing the level
// for the (character, skill) pair.
func (h *Handler) putCharacterSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.CharacterSkills.ValidateNew(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.SetCharacterSkill(r.Context(), id,
		chi.URLParam(r, "skill"), schema.Int(fields, "level"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) deleteCharacterSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.store.DeleteCharacterSkill(r.Context(), id, chi.URLParam(r, "skill")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
