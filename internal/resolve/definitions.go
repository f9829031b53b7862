package resolve

import (
	"sort"

	"datamapper/internal/datatype"
)

// Definitions is an immutable definition table keyed by definition id.
// Extending it never modifies the receiver; scopes share their parents.
type Definitions struct {
	top *scope
}

type scope struct {
	defs   map[string]datatype.TypeDefinition
	parent *scope
}

// NewDefinitions builds a table from defs. Later entries win on id collision.
func NewDefinitions(defs ...datatype.TypeDefinition) Definitions {
	return Definitions{}.Extend(defs)
}

// Extend returns a table in which defs shadow the receiver's entries.
// The receiver is returned unchanged when defs is empty or when every entry
// is already the visible definition for its id.
func (d Definitions) Extend(defs []datatype.TypeDefinition) Definitions {
	if len(defs) == 0 {
		return d
	}

	m := make(map[string]datatype.TypeDefinition, len(defs))
	for _, def := range defs {
		m[def.ID] = def
	}

	if d.covers(m) {
		return d
	}

	return Definitions{top: &scope{defs: m, parent: d.top}}
}

func (d Definitions) covers(m map[string]datatype.TypeDefinition) bool {
	for id, def := range m {
		if visible, ok := d.Lookup(id); !ok || visible != def {
			return false
		}
	}

	return true
}

// Lookup finds the innermost definition with the given id.
func (d Definitions) Lookup(id string) (datatype.TypeDefinition, bool) {
	for s := d.top; s != nil; s = s.parent {
		if def, ok := s.defs[id]; ok {
			return def, true
		}
	}

	return datatype.TypeDefinition{}, false
}

// IDs returns the visible definition ids in sorted order.
func (d Definitions) IDs() []string {
	seen := map[string]struct{}{}

	for s := d.top; s != nil; s = s.parent {
		for id := range s.defs {
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Len returns the number of visible definitions.
func (d Definitions) Len() int {
	return len(d.IDs())
}

// IsEmpty reports whether no definition is visible.
func (d Definitions) IsEmpty() bool {
	for s := d.top; s != nil; s = s.parent {
		if len(s.defs) > 0 {
			return false
		}
	}

	return true
}

// MergeLocalDefinitions returns defs extended with the local definitions of t.
// When t declares none, defs is returned as is.
func MergeLocalDefinitions(defs Definitions, t datatype.DataType) Definitions {
	if t == nil {
		return defs
	}

	return defs.Extend(t.Definitions())
}
