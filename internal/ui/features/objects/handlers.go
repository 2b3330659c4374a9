// Package objects serves the example viewer: one concrete instance per
// object type, rendered as IDF text.
package objects

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/buildsim-labs/oslens/internal/ui/features/common"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// ExampleSignals carries the selected class sent by the frontend.
type ExampleSignals struct {
	Class string `json:"class"`
}

// Handlers provides HTTP handlers for the objects feature.
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

// ExampleSSE renders the representative object of the selected type.
func (h *Handlers) ExampleSSE(w http.ResponseWriter, r *http.Request) {
	var signals ExampleSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)

	if signals.Class == "" {
		_ = sse.PatchElementTempl(common.ExamplePanel(nil))
		return
	}

	snap, ok := h.workspace.Snapshot()
	if !ok {
		_ = sse.PatchElementTempl(common.ExamplePanel(&common.ExampleData{
			TypeName: signals.Class,
			Error:    "No model loaded.",
		}))
		return
	}

	if err := sse.PatchElementTempl(common.ExamplePanel(common.BuildExample(snap, signals.Class))); err != nil {
		_ = sse.ConsoleError(err)
	}
}
