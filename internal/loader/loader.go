// Package loader loads model files into memory, memoizing results so a file
// is not reparsed while a browsing session works with it.
package loader

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/buildsim-labs/oslens/internal/osm"
)

// LoadError reports that a file could not be parsed or translated into a
// model. It is a terminal failure for that load attempt; no partial model is
// produced.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load model %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// cacheKey memoizes loads by the two inputs that determine the result.
type cacheKey struct {
	path      string
	translate bool
}

// Loader loads model files, caching by absolute path and translation flag.
type Loader struct {
	mu     sync.Mutex
	cache  map[cacheKey]*osm.Model
	logger *slog.Logger
}

// New creates a Loader. A nil logger disables logging.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		cache:  make(map[cacheKey]*osm.Model),
		logger: logger,
	}
}

// Load returns the model stored at path. With useVersionTranslator set,
// older-schema files are upgraded to the current schema; otherwise the file
// must already be at the current version. Results are memoized per
// (path, flag); failed loads are not cached.
func (l *Loader) Load(path string, useVersionTranslator bool) (*osm.Model, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	key := cacheKey{path: abs, translate: useVersionTranslator}

	l.mu.Lock()
	defer l.mu.Unlock()

	if model, ok := l.cache[key]; ok {
		l.logger.Debug("model load served from cache", "path", abs, "translate", useVersionTranslator)
		return model, nil
	}

	var model *osm.Model
	if useVersionTranslator {
		model, err = osm.NewVersionTranslator().LoadModel(abs)
	} else {
		model, err = osm.Load(abs)
	}
	if err != nil {
		return nil, &LoadError{Path: abs, Err: err}
	}

	l.logger.Info("model loaded", "path", abs, "translate", useVersionTranslator, "objects", model.NumObjects(), "version", model.Version())
	l.cache[key] = model
	return model, nil
}

// Invalidate drops all memoized models. Called when a new file is uploaded
// so stale handles are never served.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[cacheKey]*osm.Model)
}
