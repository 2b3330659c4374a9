package osm

import (
	"fmt"

	"github.com/google/uuid"
)

// Model is an ordered collection of objects loaded from a single file.
// Object order is the file order, so enumeration is deterministic.
type Model struct {
	version string
	objects []*Object
	index   map[uuid.UUID]*Object
}

// NewModel creates an empty model at the given schema version.
func NewModel(version string) *Model {
	return &Model{
		version: version,
		index:   make(map[uuid.UUID]*Object),
	}
}

// Version returns the model's schema version, e.g. "3.9.0".
func (m *Model) Version() string { return m.version }

// AddObject appends an object to the model. It fails when the object's
// handle collides with one already in the model.
func (m *Model) AddObject(o *Object) error {
	if _, ok := m.index[o.Handle()]; ok {
		return fmt.Errorf("duplicate handle %s", o.Handle())
	}
	m.objects = append(m.objects, o)
	m.index[o.Handle()] = o
	return nil
}

// Objects returns all objects in file order. The slice is shared; callers
// must not modify it.
func (m *Model) Objects() []*Object { return m.objects }

// NumObjects returns the number of objects in the model.
func (m *Model) NumObjects() int { return len(m.objects) }

// Object resolves a handle to its object.
func (m *Model) Object(h uuid.UUID) (*Object, bool) {
	o, ok := m.index[h]
	return o, ok
}

// Building returns the typed view of the model's first OS:Building object.
func (m *Model) Building() (Building, bool) {
	for _, o := range m.objects {
		if o.IddObjectType() == "OS:Building" {
			return Building{obj: o}, true
		}
	}
	return Building{}, false
}

// setVersion updates both the model version and the version object's
// identifier field. Used by the version translator.
func (m *Model) setVersion(version string) {
	m.version = version
	for _, o := range m.objects {
		if o.IddObjectType() == versionObjectType {
			o.SetField(0, version)
		}
	}
}
