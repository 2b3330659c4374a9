package objects

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/buildsim-labs/oslens/internal/workspace"
)

// SetupRoutes registers objects routes on the router.
func SetupRoutes(router chi.Router, ws *workspace.Workspace, sessionStore sessions.Store) error {
	handlers := NewHandlers(ws, sessionStore)

	router.Route("/api/example", func(r chi.Router) {
		r.Get("/", handlers.ExampleSSE)
	})

	return nil
}
