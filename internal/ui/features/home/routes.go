package home

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/buildsim-labs/oslens/internal/ui/notifier"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// SetupRoutes registers home routes on the router.
func SetupRoutes(router chi.Router, ws *workspace.Workspace, sessionStore sessions.Store, notify *notifier.Notifier) error {
	handlers := NewHandlers(ws, sessionStore, notify)

	router.Get("/", handlers.HomePage)
	router.Get("/updates", handlers.Updates)

	return nil
}
