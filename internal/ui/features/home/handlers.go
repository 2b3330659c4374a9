// Package home provides the main explorer page and its live-update stream.
package home

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/buildsim-labs/oslens/internal/ui/features/common"
	"github.com/buildsim-labs/oslens/internal/ui/notifier"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// UpdateSignals carries the filter state sent by the frontend.
type UpdateSignals struct {
	Class   string `json:"class"`
	Keyword string `json:"keyword"`
}

// Handlers provides HTTP handlers for the home feature.
type Handlers struct {
	workspace    *workspace.Workspace
	sessionStore sessions.Store
	notifier     *notifier.Notifier
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(ws *workspace.Workspace, sessionStore sessions.Store, notify *notifier.Notifier) *Handlers {
	return &Handlers{
		workspace:    ws,
		sessionStore: sessionStore,
		notifier:     notify,
	}
}

// HomePage renders the explorer page with server-rendered content.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	data := common.BuildAppData(h.workspace, "", "")

	if err := common.Layout("Object Methods Explorer", common.AppShell(data)).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Updates is the long-lived SSE endpoint for the explorer page. It pushes a
// fresh app view whenever the published state changes.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	var signals UpdateSignals
	_ = datastar.ReadSignals(r, &signals)

	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			data := common.BuildAppData(h.workspace, signals.Class, signals.Keyword)
			if err := sse.PatchElementTempl(common.AppShell(data)); err != nil {
				_ = sse.ConsoleError(err)
				// Keep trying on the next update
			}
		}
	}
}
