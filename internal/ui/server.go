// Package ui provides the web-based explorer for OpenStudio models.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/buildsim-labs/oslens/internal/catalog"
	"github.com/buildsim-labs/oslens/internal/loader"
	"github.com/buildsim-labs/oslens/internal/ui/notifier"
	"github.com/buildsim-labs/oslens/internal/ui/router"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// Server is the main UI server.
type Server struct {
	workspace    *workspace.Workspace
	loader       *loader.Loader
	sessionStore *sessions.CookieStore
	port         int
	watch        bool
	modelPath    string
	translate    bool
	logger       *slog.Logger
	notifier     *notifier.Notifier
}

// Config holds configuration for the UI server.
type Config struct {
	Workspace     *workspace.Workspace
	Loader        *loader.Loader
	Port          int
	Watch         bool
	ModelPath     string
	Translate     bool
	SessionSecret string
	Logger        *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		workspace:    cfg.Workspace,
		loader:       cfg.Loader,
		sessionStore: sessionStore,
		port:         cfg.Port,
		watch:        cfg.Watch,
		modelPath:    cfg.ModelPath,
		translate:    cfg.Translate,
		logger:       logger,
		notifier:     notifier.New(),
	}
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	if err := router.SetupRoutes(r, s.workspace, s.loader, s.sessionStore, s.notifier, s.logger, s.IsDev()); err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	// Preload a model given on the command line so the page is populated
	// on first visit.
	if s.modelPath != "" {
		if err := s.reloadModel(); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start file watcher if enabled
	if s.watch && s.modelPath != "" {
		eg.Go(func() error {
			return s.watchModel(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// IsDev returns true if running in development mode.
func (s *Server) IsDev() bool {
	// Can be determined by build tag or config
	return true // For now, always dev mode
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// reloadModel loads the configured model file from scratch and publishes
// the result.
func (s *Server) reloadModel() error {
	s.loader.Invalidate()

	model, err := s.loader.Load(s.modelPath, s.translate)
	if err != nil {
		return err
	}

	builder := catalog.NewBuilder(s.logger)
	cat := builder.Build(model)

	snap := s.workspace.Publish(filepath.Base(s.modelPath), model, cat)
	s.notifier.Broadcast()

	s.logger.Info("model published",
		"file", s.modelPath,
		"generation", snap.Generation,
		"objects", model.NumObjects(),
		"types", cat.NumTypes(),
	)
	return nil
}

// watchModel watches the configured model file for changes and republishes
// it on write.
func (s *Server) watchModel(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the containing directory: editors often replace the file, which
	// drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(s.modelPath)); err != nil {
		s.logger.Error("failed to watch model file", "error", err)
		// Don't fail - continue without watching
		<-ctx.Done()
		return nil
	}

	target, err := filepath.Abs(s.modelPath)
	if err != nil {
		return err
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("model file changed, reloading", "file", event.Name)

				if err := s.reloadModel(); err != nil {
					s.logger.Error("reload failed", "error", err)
					s.workspace.Clear()
					s.notifier.Broadcast()
				}
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}
