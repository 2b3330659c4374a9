// Package workspace holds the published state of a browsing session: the
// loaded model and its catalog, swapped together so stale combinations are
// never observable.
package workspace

import (
	"sync"

	"github.com/buildsim-labs/oslens/internal/catalog"
	"github.com/buildsim-labs/oslens/internal/osm"
)

// Snapshot is one published (model, catalog) pair. The generation counter
// identifies which upload produced it.
type Snapshot struct {
	Generation int
	FileName   string
	Model      *osm.Model
	Catalog    *catalog.Catalog
}

// Workspace publishes snapshots atomically. The zero value is empty and
// ready to use.
type Workspace struct {
	mu      sync.RWMutex
	gen     int
	current *Snapshot
}

// New creates an empty workspace.
func New() *Workspace {
	return &Workspace{}
}

// Publish replaces the session state with a new model/catalog pair built
// from the same upload, bumping the generation.
func (w *Workspace) Publish(fileName string, model *osm.Model, cat *catalog.Catalog) Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.current = &Snapshot{
		Generation: w.gen,
		FileName:   fileName,
		Model:      model,
		Catalog:    cat,
	}
	return *w.current
}

// Snapshot returns the currently published state, reporting false when
// nothing has been published (or the last upload was rolled back).
func (w *Workspace) Snapshot() (Snapshot, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.current == nil {
		return Snapshot{}, false
	}
	return *w.current, true
}

// Clear rolls back all published state, e.g. after a failed upload. The
// generation keeps advancing so old snapshots remain distinguishable.
func (w *Workspace) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.current = nil
}
