package osm

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupView(t *testing.T) {
	obj := NewObject("OS:Space", "Space 1", "Open Office", "Zone 1", "0", "42.5")

	ctor, ok := LookupView("OS:Space")
	require.True(t, ok)

	view, present := ctor(obj)
	require.True(t, present)

	space, ok := view.(Space)
	require.True(t, ok)
	assert.Equal(t, "Space 1", space.Name())
	assert.Equal(t, "Zone 1", space.ThermalZoneName())
	assert.InDelta(t, 42.5, space.FloorArea(), 1e-9)
}

func TestLookupView_UnregisteredType(t *testing.T) {
	_, ok := LookupView("OS:Version")
	assert.False(t, ok)
}

func TestLookupView_AbsentForFieldlessObject(t *testing.T) {
	ctor, ok := LookupView("OS:Building")
	require.True(t, ok)

	_, present := ctor(NewObject("OS:Building"))
	assert.False(t, present)
}

func TestRegisteredTypes_Sorted(t *testing.T) {
	types := RegisteredTypes()
	require.NotEmpty(t, types)
	assert.True(t, sort.StringsAreSorted(types))
	assert.Contains(t, types, "OS:Space")
	assert.Contains(t, types, "OS:Schedule:Constant")
}

func TestBuildingView_Setters(t *testing.T) {
	obj := NewObject("OS:Building", "Main Office", "Commercial", "0", "3.0", "2", "Office")
	b := Building{obj: obj}

	b.SetNorthAxis(90)
	assert.InDelta(t, 90, b.NorthAxis(), 1e-9)

	b.SetStandardsBuildingType("Retail")
	assert.Equal(t, "Retail", b.StandardsBuildingType())
	assert.Same(t, obj, b.ToModelObject())
}

func TestConstructionView_Layers(t *testing.T) {
	obj := NewObject("OS:Construction", "Exterior Wall", "Brick", "Insulation", "Gypsum")
	c := Construction{obj: obj}

	assert.Equal(t, 3, c.NumLayers())
	layer, ok := c.Layer(1)
	require.True(t, ok)
	assert.Equal(t, "Insulation", layer)

	_, ok = c.Layer(3)
	assert.False(t, ok)
}

func TestScheduleConstantView_Value(t *testing.T) {
	obj := NewObject("OS:Schedule:Constant", "Always On", "Fractional", "1")
	sc := ScheduleConstant{obj: obj}

	assert.InDelta(t, 1, sc.Value(), 1e-9)
	sc.SetValue(0.5)
	assert.InDelta(t, 0.5, sc.Value(), 1e-9)
}
