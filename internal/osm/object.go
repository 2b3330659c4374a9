// Package osm implements the in-memory representation of OpenStudio-style
// building energy models: parsing the IDF-style text format, version
// translation, and typed views over model objects.
package osm

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TypePrefix is the namespace prefix shared by all domain object types.
// Objects with other prefixes may appear in a file but are not part of the
// domain schema.
const TypePrefix = "OS:"

// Object is a generic model object: a declared type identifier, a unique
// handle, and an ordered list of string fields. By convention field 0 holds
// the object name for named types.
type Object struct {
	typeName string
	handle   uuid.UUID
	fields   []string
}

// NewObject creates an object with a fresh handle.
func NewObject(typeName string, fields ...string) *Object {
	return &Object{
		typeName: typeName,
		handle:   uuid.New(),
		fields:   fields,
	}
}

// IddObjectType returns the declared type identifier, e.g. "OS:Space".
func (o *Object) IddObjectType() string { return o.typeName }

// Handle returns the object's unique handle, stable within its model.
func (o *Object) Handle() uuid.UUID { return o.handle }

// Name returns the conventional name slot (field 0), or "" when the object
// has no fields.
func (o *Object) Name() string {
	if len(o.fields) == 0 {
		return ""
	}
	return o.fields[0]
}

// SetName sets the conventional name slot, growing the field list if needed.
func (o *Object) SetName(name string) { o.SetField(0, name) }

// NumFields returns the number of fields, excluding the handle.
func (o *Object) NumFields() int { return len(o.fields) }

// Field returns field i, reporting false when i is out of range.
func (o *Object) Field(i int) (string, bool) {
	if i < 0 || i >= len(o.fields) {
		return "", false
	}
	return o.fields[i], true
}

// SetField sets field i, padding intermediate fields with empty strings.
func (o *Object) SetField(i int, value string) {
	if i < 0 {
		return
	}
	for len(o.fields) <= i {
		o.fields = append(o.fields, "")
	}
	o.fields[i] = value
}

// Text renders the object in IDF format: type, handle, then each field,
// comma-separated and semicolon-terminated.
func (o *Object) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s,\n", o.typeName)

	rows := make([]string, 0, len(o.fields)+1)
	rows = append(rows, "{"+o.handle.String()+"}")
	rows = append(rows, o.fields...)

	for i, v := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ";"
		}
		comment := ""
		switch i {
		case 0:
			comment = " !- Handle"
		case 1:
			comment = " !- Name"
		}
		fmt.Fprintf(&b, "  %s%s%s\n", v, sep, comment)
	}
	return b.String()
}

// String implements fmt.Stringer so objects print as their IDF text.
func (o *Object) String() string { return o.Text() }

// setType is used by version migrations that rename object types.
func (o *Object) setType(typeName string) { o.typeName = typeName }

// setHandle is used by the parser when a file supplies an explicit handle.
func (o *Object) setHandle(h uuid.UUID) { o.handle = h }
