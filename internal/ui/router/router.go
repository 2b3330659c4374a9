// Package router sets up HTTP routes for the UI server.
package router

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/buildsim-labs/oslens/internal/loader"
	catalogFeature "github.com/buildsim-labs/oslens/internal/ui/features/catalogtable"
	homeFeature "github.com/buildsim-labs/oslens/internal/ui/features/home"
	objectsFeature "github.com/buildsim-labs/oslens/internal/ui/features/objects"
	uploadFeature "github.com/buildsim-labs/oslens/internal/ui/features/upload"
	"github.com/buildsim-labs/oslens/internal/ui/notifier"
	"github.com/buildsim-labs/oslens/internal/ui/resources"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(
	router chi.Router,
	ws *workspace.Workspace,
	ld *loader.Loader,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	logger *slog.Logger,
	isDev bool,
) error {
	// Hot reload endpoint for dev mode
	if isDev {
		setupReload(router)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	if err := homeFeature.SetupRoutes(router, ws, sessionStore, notify); err != nil {
		return err
	}

	if err := uploadFeature.SetupRoutes(router, ws, ld, sessionStore, notify, logger); err != nil {
		return err
	}

	if err := catalogFeature.SetupRoutes(router, ws, sessionStore); err != nil {
		return err
	}

	if err := objectsFeature.SetupRoutes(router, ws, sessionStore); err != nil {
		return err
	}

	return nil
}

func setupReload(router chi.Router) {
	reloadChan := make(chan struct{}, 1)
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)
		select {
		case <-reloadChan:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		select {
		case reloadChan <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
