// Package catalog discovers which object types a model contains and which
// callable operations each type's most-specific typed view exposes.
package catalog

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/buildsim-labs/oslens/internal/osm"
)

// NoMethodsPlaceholder is the single row text for a type whose view exposes
// no operations.
const NoMethodsPlaceholder = "No public methods"

// castPrefix marks cast-convention methods, which are not domain operations.
const castPrefix = "To"

// Row is one (object type, operation) pair of the flattened catalog table.
type Row struct {
	ObjectType string
	Method     string
}

// ProgressFunc receives incremental progress while a catalog is built:
// processed counts every consumed object, duplicates included.
type ProgressFunc func(processed, total int)

// Builder builds catalogs. The zero value is usable; Logger and Progress
// are optional.
type Builder struct {
	Logger   *slog.Logger
	Progress ProgressFunc
}

// NewBuilder creates a Builder with the given logger.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{Logger: logger}
}

// Build catalogs every domain object type in the model. It never fails:
// per-type introspection problems degrade to an error-marker row for that
// type only, and an empty model yields an empty catalog.
func (b *Builder) Build(model *osm.Model) *Catalog {
	cat := &Catalog{
		methodsByType:   make(map[string][]string),
		representatives: make(map[string]uuid.UUID),
	}

	objects := model.Objects()
	total := len(objects)

	for i, obj := range objects {
		typeName := obj.IddObjectType()

		if strings.HasPrefix(typeName, osm.TypePrefix) {
			if _, seen := cat.methodsByType[typeName]; !seen {
				cat.types = append(cat.types, typeName)
				cat.representatives[typeName] = obj.Handle()
				cat.methodsByType[typeName] = b.introspect(model, obj)
			}
		}

		if b.Progress != nil {
			b.Progress(i+1, total)
		}
	}

	cat.flatten()
	return cat
}

// introspect resolves the most-specific typed view of obj and lists its
// operations. Panics are recovered into a single error-marker entry so one
// bad type cannot abort the whole build.
func (b *Builder) introspect(model *osm.Model, obj *osm.Object) (methods []string) {
	defer func() {
		if r := recover(); r != nil {
			if b.Logger != nil {
				b.Logger.Warn("introspection failed", "type", obj.IddObjectType(), "error", r)
			}
			methods = []string{fmt.Sprintf("Error getting methods: %v", r)}
		}
	}()

	// Resolve the generic handle the way a presentation layer would; the
	// representative is displayed later through the same lookup.
	generic, ok := model.Object(obj.Handle())
	if !ok {
		panic(fmt.Sprintf("handle %s not found in model", obj.Handle()))
	}

	var view any = generic
	if ctor, registered := osm.LookupView(obj.IddObjectType()); registered {
		// A registered constructor may still decline the object; the
		// generic object stands in for it then, same as for types with no
		// registered view at all.
		if specific, present := ctor(generic); present {
			view = specific
		}
	}

	return operationNames(view)
}

// operationNames lists the exported methods of a typed view, excluding
// cast-convention names, sorted alphabetically. Unexported methods never
// appear in a reflected method set.
func operationNames(view any) []string {
	t := reflect.TypeOf(view)
	names := make([]string, 0, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		if strings.HasPrefix(name, castPrefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
