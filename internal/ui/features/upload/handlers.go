// Package upload handles model file uploads: the uploaded bytes go to a
// scoped temp file, get loaded and catalogued with live progress, and the
// result is published to the session workspace.
package upload

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/buildsim-labs/oslens/internal/catalog"
	"github.com/buildsim-labs/oslens/internal/loader"
	"github.com/buildsim-labs/oslens/internal/ui/features/common"
	"github.com/buildsim-labs/oslens/internal/ui/notifier"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// maxUploadBytes bounds the multipart form memory buffer.
const maxUploadBytes = 64 << 20

// progressStride limits how often build progress is patched to the client.
const progressStride = 25

// Handlers provides HTTP handlers for the upload feature.
type Handlers struct {
	workspace    *workspace.Workspace
	loader       *loader.Loader
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(ws *workspace.Workspace, ld *loader.Loader, sessionStore sessions.Store, notify *notifier.Notifier, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		workspace:    ws,
		loader:       ld,
		sessionStore: sessionStore,
		notifier:     notify,
		logger:       logger,
	}
}

// Upload receives a model file, builds its catalog, and publishes the
// result. Progress and the final view are streamed back over SSE. Any
// failure rolls back the published state so nothing partial is exposed.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.fail(sse, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	file, header, err := r.FormFile("model")
	if err != nil {
		h.fail(sse, fmt.Errorf("no model file in upload: %w", err))
		return
	}
	defer func() { _ = file.Close() }()

	translate := r.FormValue("translate") != ""

	_ = sse.PatchElementTempl(common.StatusMessage("info", fmt.Sprintf("Loading model: %s...", header.Filename)))

	// Scoped temp file: create, use, delete.
	tmp, err := os.CreateTemp("", "oslens-*.osm")
	if err != nil {
		h.fail(sse, fmt.Errorf("failed to create temp file: %w", err))
		return
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		h.fail(sse, fmt.Errorf("failed to store upload: %w", err))
		return
	}
	if err := tmp.Close(); err != nil {
		h.fail(sse, fmt.Errorf("failed to store upload: %w", err))
		return
	}

	// A new upload invalidates everything memoized for the previous one.
	h.loader.Invalidate()

	model, err := h.loader.Load(tmpPath, translate)
	if err != nil {
		h.fail(sse, err)
		return
	}

	builder := catalog.NewBuilder(h.logger)
	builder.Progress = func(processed, total int) {
		if processed%progressStride == 0 || processed == total {
			_ = sse.PatchElementTempl(common.ProgressBar(processed, total))
		}
	}
	cat := builder.Build(model)

	snap := h.workspace.Publish(header.Filename, model, cat)
	h.notifier.Broadcast()

	h.logger.Info("model published",
		"file", header.Filename,
		"generation", snap.Generation,
		"objects", model.NumObjects(),
		"types", cat.NumTypes(),
	)

	_ = sse.PatchElementTempl(common.StatusMessage("success", "Model loaded successfully."))
	if err := sse.PatchElementTempl(common.AppShell(common.BuildAppData(h.workspace, "", ""))); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// fail rolls back the session state and reports the error to the client.
func (h *Handlers) fail(sse *datastar.ServerSentEventGenerator, err error) {
	h.logger.Error("upload failed", "error", err)

	h.workspace.Clear()
	h.notifier.Broadcast()

	_ = sse.PatchElementTempl(common.StatusMessage("error", fmt.Sprintf("An error occurred while processing the model: %v", err)))
}
