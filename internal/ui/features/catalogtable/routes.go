package catalogtable

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/buildsim-labs/oslens/internal/workspace"
)

// SetupRoutes registers catalog table routes on the router.
func SetupRoutes(router chi.Router, ws *workspace.Workspace, sessionStore sessions.Store) error {
	handlers := NewHandlers(ws, sessionStore)

	router.Route("/api/catalog", func(r chi.Router) {
		r.Get("/", handlers.TableSSE)
	})

	return nil
}
