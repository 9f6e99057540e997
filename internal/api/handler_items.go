package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feywood/tomekeeper/internal/schema"
	"github.com/feywood/tomekeeper/internal/storage"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListItems(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := schema.Items.ValidateNew(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.CreateItem(r.Context(), storage.Item{
		Name:        schema.Text(fields, "name"),
		Kind:        schema.Text(fields, "kind"),
		Weight:      schema.Number(fields, "weight"),
		Cost:        schema.Int(fields, "cost"),
		Description: schema.Text(fields, "description"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.GetItem(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
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
	if err := schema.Items.ValidateUpdate(fields); err != nil {
		h.writeError(w, r, err)
		return
	}

	record, err := h.store.UpdateItem(r.Context(), id, schema.Items.Normalize(fields))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.store.DeleteItem(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
