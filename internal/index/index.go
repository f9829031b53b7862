// Package index flattens a type tree into an id-addressable element map.
package index

import (
	"fmt"

	"datamapper/internal/datatype"
	"datamapper/internal/resolve"
)

// Entry is an indexed attribute together with the definitions visible at the
// object that declares it.
type Entry struct {
	Attribute datatype.Attribute
	Context   resolve.Definitions
}

// ElementMap maps attribute ids to entries and remembers discovery order.
type ElementMap struct {
	entries map[string]Entry
	order   []string
}

func newElementMap() *ElementMap {
	return &ElementMap{entries: make(map[string]Entry)}
}

// Get returns the entry stored for id.
func (m *ElementMap) Get(id string) (Entry, bool) {
	e, ok := m.entries[id]
	return e, ok
}

// Has reports whether id is indexed.
func (m *ElementMap) Has(id string) bool {
	_, ok := m.entries[id]
	return ok
}

// Len returns the number of indexed attributes.
func (m *ElementMap) Len() int { return len(m.order) }

// IDs returns the indexed ids in discovery order.
func (m *ElementMap) IDs() []string {
	return append([]string(nil), m.order...)
}

// Entries returns the indexed entries in discovery order.
func (m *ElementMap) Entries() []Entry {
	result := make([]Entry, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.entries[id])
	}

	return result
}

func (m *ElementMap) add(e Entry) bool {
	if m.Has(e.Attribute.ID) {
		return false
	}

	m.entries[e.Attribute.ID] = e
	m.order = append(m.order, e.Attribute.ID)

	return true
}

// Indexer builds element maps.
type Indexer struct {
	Resolver resolve.Resolver
}

// BuildElementMap indexes every attribute reachable from t, depth first.
// The first attribute discovered for an id wins; later ones are skipped.
func BuildElementMap(t datatype.DataType, defs resolve.Definitions) (*ElementMap, error) {
	return Indexer{Resolver: resolve.Default()}.BuildElementMap(t, defs)
}

// BuildElementMap indexes every attribute reachable from t, depth first.
func (ix Indexer) BuildElementMap(t datatype.DataType, defs resolve.Definitions) (*ElementMap, error) {
	m := newElementMap()

	err := ix.collect(m, t, defs)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (ix Indexer) collect(m *ElementMap, t datatype.DataType, defs resolve.Definitions) error {
	entries, err := ix.enumerate(t, defs)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if !m.add(e) {
			continue
		}

		err := ix.collect(m, e.Attribute.Type, e.Context)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", e.Attribute.ID, err)
		}
	}

	return nil
}

// Children lists the attributes directly exposed by t: the schema of an
// object, the children of an array's item type, or the children of every
// member of a compound type, in declaration order.
func (ix Indexer) Children(t datatype.DataType, defs resolve.Definitions) ([]Entry, error) {
	return ix.enumerate(t, defs)
}

func (ix Indexer) enumerate(t datatype.DataType, defs resolve.Definitions) ([]Entry, error) {
	resolved, defs, err := ix.Resolver.Resolve(t, defs)
	if err != nil {
		return nil, err
	}

	defs = resolve.MergeLocalDefinitions(defs, resolved)

	switch rt := resolved.(type) {
	case *datatype.Array:
		return ix.enumerate(rt.ItemType, defs)
	case *datatype.Object:
		entries := make([]Entry, 0, len(rt.Schema.Attributes))
		for _, a := range rt.Schema.Attributes {
			entries = append(entries, Entry{Attribute: a, Context: defs})
		}

		return entries, nil
	default:
		members, ok := datatype.SubTypes(resolved)
		if !ok {
			return nil, nil
		}

		var entries []Entry

		for _, member := range members {
			sub, err := ix.enumerate(member, defs)
			if err != nil {
				return nil, err
			}

			entries = append(entries, sub...)
		}

		return entries, nil
	}
}

// BuildSchemaElementMap indexes the headers, properties and body of a message
// schema into one map. Headers and properties are indexed with their nested
// attributes; the body is indexed with its own local definitions.
func BuildSchemaElementMap(schema datatype.MessageSchema) (*ElementMap, error) {
	return Indexer{Resolver: resolve.Default()}.BuildSchemaElementMap(schema)
}

// BuildSchemaElementMap indexes headers, properties and body of schema.
func (ix Indexer) BuildSchemaElementMap(schema datatype.MessageSchema) (*ElementMap, error) {
	m := newElementMap()

	for _, section := range [][]datatype.Attribute{schema.Headers, schema.Properties} {
		for _, a := range section {
			if !m.add(Entry{Attribute: a}) {
				continue
			}

			err := ix.collect(m, a.Type, resolve.Definitions{})
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", a.ID, err)
			}
		}
	}

	if schema.Body != nil {
		err := ix.collect(m, schema.Body, resolve.Definitions{})
		if err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}
	}

	return m, nil
}
