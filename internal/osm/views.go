package osm

import "strconv"

// Typed views wrap a generic object with the accessors of its most-specific
// type. All views share the convention that field 0 is the name and that
// methods prefixed "To" are casts back to less-specific representations,
// not domain operations.

// buildingNumFields is the 3.9.0 field count of OS:Building.
const buildingNumFields = 6

// Building is the typed view over OS:Building objects.
type Building struct{ obj *Object }

func (b Building) Name() string        { return b.obj.Name() }
func (b Building) SetName(name string) { b.obj.SetName(name) }

// BuildingSectorType returns the sector classification, e.g. "Commercial".
func (b Building) BuildingSectorType() string { return stringField(b.obj, 1) }

// NorthAxis returns the building rotation from true north in degrees.
func (b Building) NorthAxis() float64            { return floatField(b.obj, 2) }
func (b Building) SetNorthAxis(degrees float64)  { setFloatField(b.obj, 2, degrees) }
func (b Building) NominalFloorToCeilingHeight() float64 {
	return floatField(b.obj, 3)
}
func (b Building) StandardsNumberOfStories() float64 { return floatField(b.obj, 4) }
func (b Building) StandardsBuildingType() string     { return stringField(b.obj, 5) }
func (b Building) SetStandardsBuildingType(t string) { b.obj.SetField(5, t) }

// ToModelObject casts back to the generic object.
func (b Building) ToModelObject() *Object { return b.obj }

// Space is the typed view over OS:Space objects.
type Space struct{ obj *Object }

func (s Space) Name() string                       { return s.obj.Name() }
func (s Space) SetName(name string)                { s.obj.SetName(name) }
func (s Space) SpaceTypeName() string              { return stringField(s.obj, 1) }
func (s Space) ThermalZoneName() string            { return stringField(s.obj, 2) }
func (s Space) SetThermalZoneName(name string)     { s.obj.SetField(2, name) }
func (s Space) DirectionOfRelativeNorth() float64  { return floatField(s.obj, 3) }
func (s Space) FloorArea() float64                 { return floatField(s.obj, 4) }
func (s Space) ToModelObject() *Object             { return s.obj }

// ThermalZone is the typed view over OS:ThermalZone objects.
type ThermalZone struct{ obj *Object }

func (z ThermalZone) Name() string        { return z.obj.Name() }
func (z ThermalZone) SetName(name string) { z.obj.SetName(name) }
func (z ThermalZone) Multiplier() float64 { return floatField(z.obj, 1) }
func (z ThermalZone) SetMultiplier(mult float64) {
	setFloatField(z.obj, 1, mult)
}
func (z ThermalZone) CeilingHeight() float64 { return floatField(z.obj, 2) }
func (z ThermalZone) Volume() float64        { return floatField(z.obj, 3) }
func (z ThermalZone) ToModelObject() *Object { return z.obj }

// Surface is the typed view over OS:Surface objects.
type Surface struct{ obj *Object }

func (s Surface) Name() string                    { return s.obj.Name() }
func (s Surface) SetName(name string)             { s.obj.SetName(name) }
func (s Surface) SurfaceType() string             { return stringField(s.obj, 1) }
func (s Surface) SetSurfaceType(t string)         { s.obj.SetField(1, t) }
func (s Surface) ConstructionName() string        { return stringField(s.obj, 2) }
func (s Surface) SpaceName() string               { return stringField(s.obj, 3) }
func (s Surface) OutsideBoundaryCondition() string {
	return stringField(s.obj, 4)
}

// ToPlanarSurface casts to the planar-surface representation; surfaces are
// already planar, so the cast is the identity.
func (s Surface) ToPlanarSurface() Surface { return s }
func (s Surface) ToModelObject() *Object   { return s.obj }

// Construction is the typed view over OS:Construction objects. Fields after
// the name are the material layers, outside in.
type Construction struct{ obj *Object }

func (c Construction) Name() string        { return c.obj.Name() }
func (c Construction) SetName(name string) { c.obj.SetName(name) }
func (c Construction) NumLayers() int {
	if c.obj.NumFields() <= 1 {
		return 0
	}
	return c.obj.NumFields() - 1
}
func (c Construction) Layer(i int) (string, bool) { return c.obj.Field(i + 1) }
func (c Construction) ToModelObject() *Object     { return c.obj }

// SpaceType is the typed view over OS:SpaceType objects.
type SpaceType struct{ obj *Object }

func (st SpaceType) Name() string                      { return st.obj.Name() }
func (st SpaceType) SetName(name string)               { st.obj.SetName(name) }
func (st SpaceType) DefaultConstructionSetName() string {
	return stringField(st.obj, 1)
}
func (st SpaceType) DefaultScheduleSetName() string { return stringField(st.obj, 2) }
func (st SpaceType) StandardsSpaceType() string     { return stringField(st.obj, 3) }
func (st SpaceType) SetStandardsSpaceType(t string) { st.obj.SetField(3, t) }
func (st SpaceType) ToModelObject() *Object         { return st.obj }

// ScheduleConstant is the typed view over OS:Schedule:Constant objects.
type ScheduleConstant struct{ obj *Object }

func (sc ScheduleConstant) Name() string        { return sc.obj.Name() }
func (sc ScheduleConstant) SetName(name string) { sc.obj.SetName(name) }
func (sc ScheduleConstant) ScheduleTypeLimitsName() string {
	return stringField(sc.obj, 1)
}
func (sc ScheduleConstant) Value() float64         { return floatField(sc.obj, 2) }
func (sc ScheduleConstant) SetValue(value float64) { setFloatField(sc.obj, 2, value) }
func (sc ScheduleConstant) ToModelObject() *Object { return sc.obj }

func stringField(o *Object, i int) string {
	v, _ := o.Field(i)
	return v
}

func floatField(o *Object, i int) float64 {
	v, ok := o.Field(i)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func setFloatField(o *Object, i int, v float64) {
	o.SetField(i, strconv.FormatFloat(v, 'f', -1, 64))
}
