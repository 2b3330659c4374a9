package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Catalog is the result of a build: per-type operation lists, the flattened
// row table, and one representative handle per type.
type Catalog struct {
	// types in first-encounter order
	types           []string
	methodsByType   map[string][]string
	representatives map[string]uuid.UUID
	rows            []Row
}

// Rows returns the flattened table, sorted by object type ascending. A type
// with no discovered operations contributes exactly one placeholder row.
func (c *Catalog) Rows() []Row { return c.rows }

// Types returns the distinct catalogued type identifiers in first-encounter
// order.
func (c *Catalog) Types() []string { return c.types }

// SortedTypes returns the catalogued type identifiers sorted alphabetically.
func (c *Catalog) SortedTypes() []string {
	types := make([]string, len(c.types))
	copy(types, c.types)
	sort.Strings(types)
	return types
}

// Methods returns the operation list discovered for a type.
func (c *Catalog) Methods(typeName string) ([]string, bool) {
	methods, ok := c.methodsByType[typeName]
	return methods, ok
}

// Representative returns the handle of the first object of a type
// encountered during the build.
func (c *Catalog) Representative(typeName string) (uuid.UUID, bool) {
	h, ok := c.representatives[typeName]
	return h, ok
}

// Representatives returns the full type-to-handle mapping. The map is
// shared; callers must not modify it.
func (c *Catalog) Representatives() map[string]uuid.UUID {
	return c.representatives
}

// NumTypes returns the number of distinct catalogued types.
func (c *Catalog) NumTypes() int { return len(c.types) }

// FilterRows returns the rows matching a type identifier (empty matches all)
// and a case-insensitive method keyword (empty matches all).
func (c *Catalog) FilterRows(typeName, keyword string) []Row {
	keyword = strings.ToLower(keyword)
	out := make([]Row, 0, len(c.rows))
	for _, row := range c.rows {
		if typeName != "" && row.ObjectType != typeName {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(row.Method), keyword) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// flatten explodes the per-type operation lists into one row per operation,
// sorted by type. Within a type the rows keep the operation sort order.
func (c *Catalog) flatten() {
	c.rows = c.rows[:0]
	for _, typeName := range c.types {
		methods := c.methodsByType[typeName]
		if len(methods) == 0 {
			c.rows = append(c.rows, Row{ObjectType: typeName, Method: NoMethodsPlaceholder})
			continue
		}
		for _, m := range methods {
			c.rows = append(c.rows, Row{ObjectType: typeName, Method: m})
		}
	}
	sort.SliceStable(c.rows, func(i, j int) bool {
		return c.rows[i].ObjectType < c.rows[j].ObjectType
	})
}
