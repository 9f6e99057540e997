// Package api exposes the Tomekeeper records over HTTP: JSON resource
// handlers under /api plus an HTML index page. Handlers stay thin; they
// decode payloads, validate shapes, and delegate to the store.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/feywood/tomekeeper/internal/platform/branding"
	"github.com/feywood/tomekeeper/internal/platform/timeouts"
	"github.com/feywood/tomekeeper/internal/storage"
)

// Config carries the handler dependencies.
type Config struct {
	Store   storage.Store
	Logger  zerolog.Logger
	AppName string
}

// Handler groups the HTTP handlers and their dependencies.
type Handler struct {
	store   storage.Store
	logger  zerolog.Logger
	appName string
}

// NewHandler builds the routing tree for the JSON API and the index page.
func NewHandler(cfg Config) http.Handler {
	h := &Handler{
		store:   cfg.Store,
		logger:  cfg.Logger,
		appName: cfg.AppName,
	}
	if h.appName == "" {
		h.appName = branding.AppName
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(recoverJSON(h.logger))
	r.Use(middleware.Timeout(timeouts.HTTPRequest))
	r.Use(requestLogger(h.logger))

	r.Get("/healthz", h.health)
	r.Get("/", h.index)

	r.Route("/api", func(api chi.Router) {
		api.Get("/overview", h.overview)

		api.Get("/attributes", h.listAttributeNames)
		api.Post("/attributes", h.createAttributeName)
		api.Get("/attributes/{name}", h.getAttributeName)
		api.Patch("/attributes/{name}", h.updateAttributeName)
		api.Delete("/attributes/{name}", h.deleteAttributeName)

		api.Get("/species", h.listSpecies)
		api.Post("/species", h.createSpecies)
		api.Get("/species/{name}", h.getSpecies)
		api.Patch("/species/{name}", h.updateSpecies)
		api.Delete("/species/{name}", h.deleteSpecies)

		api.Get("/classes", h.listClasses)
		api.Post("/classes", h.createClass)
		api.Get("/classes/{name}", h.getClass)
		api.Patch("/classes/{name}", h.updateClass)
		api.Delete("/classes/{name}", h.deleteClass)

		api.Get("/skills", h.listSkills)
		api.Post("/skills", h.createSkill)
		api.Get("/skills/{name}", h.getSkill)
		api.Patch("/skills/{name}", h.updateSkill)
		api.Delete("/skills/{name}", h.deleteSkill)

		api.Get("/items", h.listItems)
		api.Post("/items", h.createItem)
		api.Get("/items/{id}", h.getItem)
		api.Patch("/items/{id}", h.updateItem)
		api.Delete("/items/{id}", h.deleteItem)

		api.Get("/characters", h.listCharacters)
		api.Post("/characters", h.createCharacter)
		api.Get("/characters/{id}", h.getCharacter)
		api.Patch("/characters/{id}", h.updateCharacter)
		api.Delete("/characters/{id}", h.deleteCharacter)

		api.Get("/characters/{id}/attributes", h.listCharacterAttributes)
		api.Get("/characters/{id}/attributes/{attribute}", h.getCharacterAttribute)
		api.Put("/characters/{id}/attributes/{attribute}", h.putCharacterAttribute)
		api.Delete("/characters/{id}/attributes/{attribute}", h.deleteCharacterAttribute)

		api.Get("/characters/{id}/skills", h.listCharacterSkills)
		api.Get("/characters/{id}/skills/{skill}", h.getCharacterSkill)
		api.Put("/characters/{id}/skills/{skill}", h.putCharacterSkill)
		api.Delete("/characters/{id}/skills/{skill}", h.deleteCharacterSkill)
	})

	return otelhttp.NewHandler(r, "tomekeeper.http")
}
