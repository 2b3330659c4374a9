package objects

import (
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

func newSignalsRequest(signalsJSON string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/example?datastar="+url.QueryEscape(signalsJSON), nil)
}

func TestExampleSSE_RendersRepresentative(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.ExampleSSE(rec, newSignalsRequest(`{"class":"OS:Space"}`))

	body := rec.Body.String()
	assert.Contains(t, body, `id="example-panel"`)
	assert.Contains(t, body, "Selected Object Type:")
	assert.Contains(t, body, "OS:Space")
	assert.Contains(t, body, "Open Plan", "first encountered object is the representative")
	assert.Contains(t, body, "Object Text (IDF Format):")
	assert.NotContains(t, body, "Corner Office")
}

func TestExampleSSE_NoSelection(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.ExampleSSE(rec, newSignalsRequest(`{"class":""}`))

	assert.Contains(t, rec.Body.String(),
		"Select an Object Type (Class) from the filter to see an example object here.")
}

func TestExampleSSE_UnknownType(t *testing.T) {
	h, _ := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.ExampleSSE(rec, newSignalsRequest(`{"class":"OS:Lights"}`))

	assert.Contains(t, rec.Body.String(),
		"No example object found for type: OS:Lights.")
}

func TestExampleSSE_NoModel(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := NewHandlers(fixture.Workspace, fixture.SessionStore)

	rec := httptest.NewRecorder()
	h.ExampleSSE(rec, newSignalsRequest(`{"class":"OS:Space"}`))

	assert.Contains(t, rec.Body.String(), "No model loaded.")
}
