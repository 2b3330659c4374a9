package catalogtable

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildsim-labs/oslens/internal/ui/features"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupLoadedFixture(t)
	handlers := NewHandlers(fixture.Workspace, fixture.SessionStore)

	return handlers, fixture
}

// newSignalsRequest builds a GET request carrying signals the way the
// frontend runtime does, as JSON in the datastar query parameter.
func newSignalsRequest(path, signalsJSON string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path+"?datastar="+url.QueryEscape(signalsJSON), nil)
}

func TestTableSSE_AllRows(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.TableSSE(rec, newSignalsRequest("/api/catalog", `{"class":"","keyword":""}`))

	body := rec.Body.String()
	assert.Contains(t, body, `id="catalog-table"`)
	assert.Contains(t, body, "OS:Building")
	assert.Contains(t, body, "OS:Space")
	assert.Contains(t, body, "SetThermalZoneName")
}

func TestTableSSE_ClassFilter(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.TableSSE(rec, newSignalsRequest("/api/catalog", `{"class":"OS:Space","keyword":""}`))

	body := rec.Body.String()
	assert.Contains(t, body, "OS:Space")
	assert.Contains(t, body, "ThermalZoneName")
	assert.NotContains(t, body, "<td>OS:Building</td>")
}

func TestTableSSE_KeywordFilter(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.TableSSE(rec, newSignalsRequest("/api/catalog", `{"class":"","keyword":"SET"}`))

	body := rec.Body.String()
	assert.Contains(t, body, "SetName", "keyword match is case-insensitive")
	assert.NotContains(t, body, "<td>FloorArea</td>")
}

func TestTableSSE_RowCountLine(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	snap, _ := fixture.Workspace.Snapshot()
	total := len(snap.Catalog.Rows())
	filtered := len(snap.Catalog.FilterRows("OS:Space", ""))

	rec := httptest.NewRecorder()
	h.TableSSE(rec, newSignalsRequest("/api/catalog", `{"class":"OS:Space","keyword":""}`))

	assert.Contains(t, rec.Body.String(),
		fmt.Sprintf("Showing %d of %d rows.", filtered, total))
}

func TestTableSSE_NoModel(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := NewHandlers(fixture.Workspace, fixture.SessionStore)

	rec := httptest.NewRecorder()
	h.TableSSE(rec, newSignalsRequest("/api/catalog", `{"class":"","keyword":""}`))

	body := rec.Body.String()
	assert.Contains(t, body, `id="catalog-table"`)
	assert.Contains(t, body, "No objects found in the model.")
}
