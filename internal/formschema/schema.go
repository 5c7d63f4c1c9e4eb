package formschema

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Entities that have dynamic forms.
const (
	EntityTenant = "tenant"
	EntityUnit   = "unit"
	EntityLease  = "lease"
)

// Entities lists all entities with forms.
var Entities = []string{EntityTenant, EntityUnit, EntityLease}

// DefaultCategory is used for fields without a category.
const DefaultCategory = "General"

// Schema is the form of an entity.
type Schema struct {
	Entity string
	Fields []Field
}

// Category is a group of fields rendered together.
type Category struct {
	Name   string        `json:"name"`
	Fields []Description `json:"fields"`
}

// FieldErrors maps field keys to the problem with their value.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e[k]))
	}

	return "invalid field values: " + strings.Join(parts, "; ")
}

// New returns a schema with the fields sorted by position. Fields with the
// same position keep their order.
func New(entity string, fields ...Field) Schema {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Meta().Position < sorted[j].Meta().Position
	})

	return Schema{Entity: entity, Fields: sorted}
}

// Field returns the field with the given key.
func (s Schema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Meta().Key == key {
			return f, true
		}
	}
	return nil, false
}

// Custom returns a schema with only the fields defined by the organization.
func (s Schema) Custom() Schema {
	var fields []Field
	for _, f := range s.Fields {
		if !f.Meta().System {
			fields = append(fields, f)
		}
	}
	return Schema{Entity: s.Entity, Fields: fields}
}

// Categories groups the fields by category. Categories are ordered by their
// first field.
func (s Schema) Categories() []Category {
	var categories []Category

	for _, f := range s.Fields {
		name := f.Meta().Category
		if name == "" {
			name = DefaultCategory
		}

		i := slices.IndexFunc(categories, func(c Category) bool { return c.Name == name })
		if i == -1 {
			categories = append(categories, Category{Name: name})
			i = len(categories) - 1
		}

		categories[i].Fields = append(categories[i].Fields, f.Describe())
	}

	return categories
}

// Validate normalizes values against the schema.
//
// Unknown keys and missing required fields are reported. Optional fields
// without a value are left out of the result.
func (s Schema) Validate(values map[string]any) (map[string]any, error) {
	errs := FieldErrors{}
	out := make(map[string]any, len(values))

	for key := range values {
		if _, ok := s.Field(key); !ok {
			errs[key] = ErrUnknownField.Error()
		}
	}

	for _, f := range s.Fields {
		key := f.Meta().Key

		value, ok := values[key]
		if !ok || value == nil {
			if f.Meta().Required {
				errs[key] = ErrRequired.Error()
			}
			continue
		}

		normalized, err := f.Normalize(value)
		if err != nil {
			errs[key] = err.Error()
			continue
		}

		out[key] = normalized
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return out, nil
}
