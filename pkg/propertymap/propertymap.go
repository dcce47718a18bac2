// Package propertymap translates field names between the ReportingCloud wire
// format (camelCase properties) and the snake_case keys callers use for
// settings maps and normalized records.
package propertymap

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

// Entry pairs a wire property with its caller-facing key.
type Entry struct {
	Property string
	Key      string
}

// PropertyMap is an immutable, ordered table of entries for one entity.
type PropertyMap struct {
	name       string
	entries    []Entry
	byKey      map[string]string
	byProperty map[string]string
}

// New builds a PropertyMap. It panics if a property or key appears twice,
// since maps are declared statically.
func New(name string, entries ...Entry) *PropertyMap {
	m := &PropertyMap{
		name:       name,
		entries:    make([]Entry, 0, len(entries)),
		byKey:      make(map[string]string, len(entries)),
		byProperty: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if _, ok := m.byProperty[e.Property]; ok {
			panic(fmt.Sprintf("propertymap %s: duplicate property %q", name, e.Property))
		}
		if _, ok := m.byKey[e.Key]; ok {
			panic(fmt.Sprintf("propertymap %s: duplicate key %q", name, e.Key))
		}
		m.byProperty[e.Property] = e.Key
		m.byKey[e.Key] = e.Property
		m.entries = append(m.entries, e)
	}
	return m
}

// Snake derives entries whose key is the snake_case form of the property.
func Snake(properties ...string) []Entry {
	entries := make([]Entry, 0, len(properties))
	for _, p := range properties {
		entries = append(entries, Entry{Property: p, Key: strcase.ToSnake(p)})
	}
	return entries
}

// Name identifies the entity the map belongs to.
func (m *PropertyMap) Name() string {
	return m.name
}

// Map returns the entries in declaration order.
func (m *PropertyMap) Map() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Keys returns the caller-facing keys in declaration order.
func (m *PropertyMap) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// PropertyFor returns the wire property for a caller key.
func (m *PropertyMap) PropertyFor(key string) (string, bool) {
	p, ok := m.byKey[key]
	return p, ok
}

// KeyFor returns the caller key for a wire property.
func (m *PropertyMap) KeyFor(property string) (string, bool) {
	k, ok := m.byProperty[property]
	return k, ok
}

// ToKeys renames wire properties in data to caller keys.
func (m *PropertyMap) ToKeys(data any) any {
	return Apply(data, m.KeyFor)
}

// ToProperties renames caller keys in data to wire properties.
func (m *PropertyMap) ToProperties(data any) any {
	return Apply(data, m.PropertyFor)
}

// Apply returns a copy of data with every map key renamed through lookup,
// descending into nested maps and slices. Keys lookup does not know are kept
// as they are. Values other than maps and slices are returned unchanged.
func Apply(data any, lookup func(string) (string, bool)) any {
	switch v := data.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if renamed, ok := lookup(k); ok {
				k = renamed
			}
			out[k] = Apply(val, lookup)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = Apply(val, lookup)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, val := range v {
			out[i] = Apply(val, lookup).(map[string]any)
		}
		return out
	default:
		return data
	}
}
