package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feywood/tomekeeper/internal/schema"
	"github.com/feywood/tomekeeper/internal/storage"
)

func (h *Handler) listCharacters(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListCharacters(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (h *Handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.Characters.ValidateNew(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.CreateCharacter(r.Context(), storage.Character{
		Name:       schema.Text(fields, "name"),
		Player:     schema.Text(fields, "player"),
		Species:    schema.Text(fields, "species"),
		Class:      schema.Text(fields, "class"),
		Level:      schema.Int(fields, "level"),
		Experience: schema.Int(fields, "experience"),
		Notes:      schema.Text(fields, "notes"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) getCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.GetCharacter(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) updateCharacter(w http.ResponseWriter, r *http.Request) {
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
	if err := schema.Characters.ValidateUpdate(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.UpdateCharacter(r.Context(), id, schema.Characters.Normalize(fields))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) deleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.store.DeleteCharacter(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
