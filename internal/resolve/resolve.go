package resolve

import "datamapper/internal/datatype"

// DefaultMaxDepth is a backstop for reference chains that keep extending the
// definition scope and so never repeat exactly. Plain cycles are reported as
// *CycleError long before it is reached.
const DefaultMaxDepth = 1 << 16

// Resolver resolves reference chains.
type Resolver struct {
	// MaxDepth limits the number of references followed (0 = unlimited).
	MaxDepth int
}

// Default returns a Resolver with DefaultMaxDepth.
func Default() Resolver {
	return Resolver{MaxDepth: DefaultMaxDepth}
}

// Resolve follows t through reference definitions until a non-reference type
// is reached. It returns that type together with the definitions visible at it.
func Resolve(t datatype.DataType, defs Definitions) (datatype.DataType, Definitions, error) {
	return Default().Resolve(t, defs)
}

// Resolve follows t through reference definitions until a non-reference type
// is reached. Each reference's own local definitions are merged before its
// id is looked up.
func (r Resolver) Resolve(t datatype.DataType, defs Definitions) (datatype.DataType, Definitions, error) {
	if t == nil {
		return nil, defs, ErrNilType
	}

	type visit struct {
		ref *datatype.Reference
		top *scope
	}

	var seen map[visit]struct{}

	for steps := 0; ; steps++ {
		ref, ok := t.(*datatype.Reference)
		if !ok {
			return t, defs, nil
		}

		// The same reference reached under the same scope resolves the same
		// way again, so the chain can never end.
		key := visit{ref: ref, top: defs.top}
		if _, dup := seen[key]; dup {
			return nil, defs, &CycleError{At: ref.DefinitionID}
		}

		if seen == nil {
			seen = make(map[visit]struct{})
		}

		seen[key] = struct{}{}

		if r.MaxDepth > 0 && steps >= r.MaxDepth {
			return nil, defs, &DepthExceededError{Limit: r.MaxDepth, At: ref.DefinitionID}
		}

		defs = MergeLocalDefinitions(defs, ref)

		def, found := defs.Lookup(ref.DefinitionID)
		if !found {
			return nil, defs, &TypeResolutionError{DefinitionID: ref.DefinitionID}
		}

		if def.Type == nil {
			return nil, defs, ErrNilType
		}

		t = def.Type
	}
}
