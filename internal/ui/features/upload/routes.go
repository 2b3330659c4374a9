package upload

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/buildsim-labs/oslens/internal/loader"
	"github.com/buildsim-labs/oslens/internal/ui/notifier"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// SetupRoutes registers upload routes on the router.
func SetupRoutes(router chi.Router, ws *workspace.Workspace, ld *loader.Loader, sessionStore sessions.Store, notify *notifier.Notifier, logger *slog.Logger) error {
	handlers := NewHandlers(ws, ld, sessionStore, notify, logger)

	router.Post("/upload", handlers.Upload)

	return nil
}
