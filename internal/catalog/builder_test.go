package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsim-labs/oslens/internal/osm"
	"github.com/buildsim-labs/oslens/internal/testutil"
)

// genericMethods is the operation list discovered when a type falls back to
// its generic object: every exported method of *osm.Object, sorted.
var genericMethods = []string{
	"Field", "Handle", "IddObjectType", "Name",
	"NumFields", "SetField", "SetName", "String", "Text",
}

func newTestModel(t *testing.T, objects ...*osm.Object) *osm.Model {
	t.Helper()
	model := osm.NewModel(osm.CurrentVersion)
	for _, o := range objects {
		require.NoError(t, model.AddObject(o))
	}
	return model
}

func TestBuild_GroupsByTypeAndKeepsFirstRepresentative(t *testing.T) {
	first := osm.NewObject("OS:Space", "Space 1")
	other := osm.NewObject("OS:ThermalZone", "Zone 1")
	third := osm.NewObject("OS:Space", "Space 2")
	model := newTestModel(t, first, other, third)

	cat := NewBuilder(testutil.NewTestLogger(t)).Build(model)

	assert.Equal(t, 2, cat.NumTypes())
	assert.Equal(t, []string{"OS:Space", "OS:ThermalZone"}, cat.Types())

	// The first OS:Space is the representative, not the third object
	rep, ok := cat.Representative("OS:Space")
	require.True(t, ok)
	assert.Equal(t, first.Handle(), rep)
	assert.Len(t, cat.Representatives(), 2)
}

func TestBuild_RegisteredViewOperations(t *testing.T) {
	model := newTestModel(t, osm.NewObject("OS:Space", "Space 1", "Open Office", "Zone 1", "0", "42.5"))

	cat := NewBuilder(testutil.NewTestLogger(t)).Build(model)

	methods, ok := cat.Methods("OS:Space")
	require.True(t, ok)
	assert.Equal(t, []string{
		"DirectionOfRelativeNorth", "FloorArea", "Name",
		"SetName", "SetThermalZoneName", "SpaceTypeName", "ThermalZoneName",
	}, methods)

	// Cast-convention methods never appear
	for _, m := range methods {
		assert.False(t, strings.HasPrefix(m, "To"), "cast method %q leaked into catalog", m)
	}
}

func TestBuild_UnregisteredTypeFallsBackToGenericObject(t *testing.T) {
	model := newTestModel(t, osm.NewObject("OS:Version", osm.CurrentVersion))

	cat := NewBuilder(testutil.NewTestLogger(t)).Build(model)

	methods, ok := cat.Methods("OS:Version")
	require.True(t, ok)
	assert.Equal(t, genericMethods, methods)
}

func TestBuild_AbsentViewFallsBackToGenericObject(t *testing.T) {
	// OS:Building is registered, but a fieldless object has no typed view
	model := newTestModel(t, osm.NewObject("OS:Building"))

	cat := NewBuilder(testutil.NewTestLogger(t)).Build(model)

	methods, ok := cat.Methods("OS:Building")
	require.True(t, ok)
	assert.Equal(t, genericMethods, methods)
}

func TestBuild_SkipsNonDomainTypes(t *testing.T) {
	model := newTestModel(t,
		osm.NewObject("Schedule:Compact", "Raw Schedule"),
		osm.NewObject("OS:Space", "Space 1"),
	)

	cat := NewBuilder(testutil.NewTestLogger(t)).Build(model)

	assert.Equal(t, []string{"OS:Space"}, cat.Types())
	_, ok := cat.Methods("Schedule:Compact")
	assert.False(t, ok)
}

func TestBuild_EmptyModel(t *testing.T) {
	cat := NewBuilder(testutil.NewTestLogger(t)).Build(newTestModel(t))

	assert.Empty(t, cat.Rows())
	assert.Empty(t, cat.Representatives())
	assert.Equal(t, 0, cat.NumTypes())
}

func TestBuild_ProgressIncludesDuplicatesAndSkipped(t *testing.T) {
	model := newTestModel(t,
		osm.NewObject("OS:Space", "Space 1"),
		osm.NewObject("OS:Space", "Space 2"),
		osm.NewObject("Schedule:Compact", "Raw Schedule"),
	)

	var calls [][2]int
	b := NewBuilder(testutil.NewTestLogger(t))
	b.Progress = func(processed, total int) {
		calls = append(calls, [2]int{processed, total})
	}
	b.Build(model)

	require.Len(t, calls, 3)
	assert.Equal(t, [2]int{1, 3}, calls[0])
	assert.Equal(t, [2]int{3, 3}, calls[2])
}

func TestBuild_Idempotent(t *testing.T) {
	model := newTestModel(t,
		osm.NewObject("OS:Space", "Space 1", "Open Office", "Zone 1"),
		osm.NewObject("OS:ThermalZone", "Zone 1", "1", "3", "120"),
		osm.NewObject("OS:Version", osm.CurrentVersion),
	)

	b := NewBuilder(testutil.NewTestLogger(t))
	first := b.Build(model)
	second := b.Build(model)

	assert.Equal(t, first.Rows(), second.Rows())
	assert.Equal(t, first.Representatives(), second.Representatives())
}

func TestBuild_RowCountMatchesOperationCounts(t *testing.T) {
	model := newTestModel(t,
		osm.NewObject("OS:Space", "Space 1"),
		osm.NewObject("OS:Construction", "Wall", "Brick"),
		osm.NewObject("OS:Version", osm.CurrentVersion),
	)

	cat := NewBuilder(testutil.NewTestLogger(t)).Build(model)

	want := 0
	for _, typeName := range cat.Types() {
		methods, ok := cat.Methods(typeName)
		require.True(t, ok)
		require.NotEmpty(t, methods)
		want += len(methods)
	}
	assert.Len(t, cat.Rows(), want)

	// Rows are sorted by type ascending
	rows := cat.Rows()
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].ObjectType, rows[i].ObjectType)
	}
}

func TestIntrospect_PanicBecomesErrorRow(t *testing.T) {
	model := newTestModel(t)
	// An object that was never added to the model makes handle resolution
	// panic inside introspection.
	stray := osm.NewObject("OS:Space", "Space 1")

	b := NewBuilder(testutil.NewTestLogger(t))
	methods := b.introspect(model, stray)

	require.Len(t, methods, 1)
	assert.Contains(t, methods[0], "Error getting methods:")
}

func TestFlatten_ZeroOperationsYieldsPlaceholderRow(t *testing.T) {
	cat := &Catalog{
		types:         []string{"OS:Empty"},
		methodsByType: map[string][]string{"OS:Empty": nil},
	}
	cat.flatten()

	require.Len(t, cat.Rows(), 1)
	assert.Equal(t, Row{ObjectType: "OS:Empty", Method: NoMethodsPlaceholder}, cat.Rows()[0])
}

func TestFilterRows(t *testing.T) {
	model := newTestModel(t,
		osm.NewObject("OS:Space", "Space 1"),
		osm.NewObject("OS:ThermalZone", "Zone 1"),
	)
	cat := NewBuilder(testutil.NewTestLogger(t)).Build(model)

	all := cat.FilterRows("", "")
	assert.Equal(t, cat.Rows(), all)

	spaceOnly := cat.FilterRows("OS:Space", "")
	for _, row := range spaceOnly {
		assert.Equal(t, "OS:Space", row.ObjectType)
	}

	setters := cat.FilterRows("", "set")
	assert.NotEmpty(t, setters)
	for _, row := range setters {
		assert.Contains(t, strings.ToLower(row.Method), "set")
	}

	assert.Empty(t, cat.FilterRows("OS:Space", "no-such-method"))
}
