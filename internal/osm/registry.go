package osm

import "sort"

// ViewFunc constructs the most-specific typed view of an object. The second
// result reports whether a view is present; a registered type may decline an
// object it cannot represent (for example one with no fields at all).
type ViewFunc func(*Object) (any, bool)

// viewRegistry is the explicit, statically enumerable mapping from type
// identifier to typed-view constructor. Types absent from the map have no
// more specific representation than the generic object.
var viewRegistry = map[string]ViewFunc{
	"OS:Building": func(o *Object) (any, bool) {
		if o.NumFields() == 0 {
			return nil, false
		}
		return Building{obj: o}, true
	},
	"OS:Space": func(o *Object) (any, bool) {
		if o.NumFields() == 0 {
			return nil, false
		}
		return Space{obj: o}, true
	},
	"OS:ThermalZone": func(o *Object) (any, bool) {
		if o.NumFields() == 0 {
			return nil, false
		}
		return ThermalZone{obj: o}, true
	},
	"OS:Surface": func(o *Object) (any, bool) {
		if o.NumFields() == 0 {
			return nil, false
		}
		return Surface{obj: o}, true
	},
	"OS:Construction": func(o *Object) (any, bool) {
		if o.NumFields() == 0 {
			return nil, false
		}
		return Construction{obj: o}, true
	},
	"OS:SpaceType": func(o *Object) (any, bool) {
		if o.NumFields() == 0 {
			return nil, false
		}
		return SpaceType{obj: o}, true
	},
	"OS:Schedule:Constant": func(o *Object) (any, bool) {
		if o.NumFields() == 0 {
			return nil, false
		}
		return ScheduleConstant{obj: o}, true
	},
}

// LookupView returns the typed-view constructor registered for a type
// identifier, reporting false for unregistered types.
func LookupView(typeName string) (ViewFunc, bool) {
	fn, ok := viewRegistry[typeName]
	return fn, ok
}

// RegisteredTypes returns all type identifiers with a registered view,
// sorted alphabetically.
func RegisteredTypes() []string {
	types := make([]string, 0, len(viewRegistry))
	for t := range viewRegistry {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
