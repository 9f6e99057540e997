package api

import (
	"net/http"

	apperrors "github.com/feywood/tomekeeper/internal/platform/errors"
	"github.com/feywood/tomekeeper/internal/storage"
)

// recentCharacterLimit caps the character list on the index page.
const recentCharacterLimit = 10

type indexView struct {
	AppName  string
	Overview storage.Overview
	Recent   []map[string]any
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeUnavailable, "storage unreachable", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.store.GetOverview(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	overview, err := h.store.GetOverview(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	recent, err := h.store.RecentCharacters(r.Context(), recentCharacterLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	view := indexView{
		AppName:  h.appName,
		Overview: overview,
		Recent:   recent,
	}
	if err := templates.ExecuteTemplate(w, "index.html", view); err != nil {
		http.Error(w, "failed to render index", http.StatusInternalServerError)
	}
}
