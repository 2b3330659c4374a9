// Package catalogtable serves the filterable flattened rows table.
package catalogtable

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/buildsim-labs/oslens/internal/ui/features/common"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// FilterSignals carries the filter state sent by the frontend.
type FilterSignals struct {
	Class   string `json:"class"`
	Keyword string `json:"keyword"`
}

// Handlers provides HTTP handlers for the catalog table feature.
type Handlers struct {
	workspace    *workspace.Workspace
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(ws *workspace.Workspace, sessionStore sessions.Store) *Handlers {
	return &Handlers{
		workspace:    ws,
		sessionStore: sessionStore,
	}
}

// TableSSE re-renders the rows table for the current filter signals.
func (h *Handlers) TableSSE(w http.ResponseWriter, r *http.Request) {
	var signals FilterSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)

	data := common.BuildAppData(h.workspace, signals.Class, signals.Keyword)
	if err := sse.PatchElementTempl(common.CatalogTable(data)); err != nil {
		_ = sse.ConsoleError(err)
	}
}
