package resolve

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamapper/internal/datatype"
)

func ref(id string, locals ...datatype.TypeDefinition) *datatype.Reference {
	return &datatype.Reference{Base: datatype.Base{Defs: locals}, DefinitionID: id}
}

func def(id string, t datatype.DataType) datatype.TypeDefinition {
	return datatype.TypeDefinition{ID: id, Name: id, Type: t}
}

func TestResolve_NonReference(t *testing.T) {
	str := &datatype.String{}
	defs := NewDefinitions(def("a", &datatype.Integer{}))

	got, gotDefs, err := Resolve(str, defs)
	require.NoError(t, err)
	assert.Same(t, str, got)
	assert.Equal(t, defs, gotDefs)
}

func TestResolve_Chain(t *testing.T) {
	for _, depth := range []int{1, 2, 5, 50, 300} {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			leaf := &datatype.Boolean{}
			defs := []datatype.TypeDefinition{def(fmt.Sprintf("d%d", depth), leaf)}

			for i := depth - 1; i >= 1; i-- {
				defs = append(defs, def(fmt.Sprintf("d%d", i), ref(fmt.Sprintf("d%d", i+1))))
			}

			got, _, err := Resolve(ref("d1"), NewDefinitions(defs...))
			require.NoError(t, err)
			assert.Same(t, leaf, got)
			assert.NotEqual(t, datatype.KindReference, got.Kind())
		})
	}
}

func TestResolve_LocalDefinitionsShadowInherited(t *testing.T) {
	inherited := NewDefinitions(def("x", &datatype.String{}))
	local := &datatype.Integer{}

	got, gotDefs, err := Resolve(ref("x", def("x", local)), inherited)
	require.NoError(t, err)
	assert.Same(t, local, got)

	shadowed, ok := gotDefs.Lookup("x")
	require.True(t, ok)
	assert.Same(t, local, shadowed.Type)

	// The inherited table is left untouched.
	original, ok := inherited.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, datatype.KindString, original.Type.Kind())
}

func TestResolve_DefinitionsAccumulateAlongChain(t *testing.T) {
	// a declares b locally; b's target refers to c, declared on the outer table.
	leaf := &datatype.Null{}
	outer := NewDefinitions(def("a", ref("b", def("b", ref("c")))), def("c", leaf))

	got, gotDefs, err := Resolve(ref("a"), outer)
	require.NoError(t, err)
	assert.Same(t, leaf, got)
	assert.Equal(t, []string{"a", "b", "c"}, gotDefs.IDs())
}

func TestResolve_Deterministic(t *testing.T) {
	defs := NewDefinitions(def("a", ref("b")), def("b", &datatype.String{}))

	first, firstDefs, err := Resolve(ref("a"), defs)
	require.NoError(t, err)

	second, secondDefs, err := Resolve(ref("a"), defs)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, firstDefs.IDs(), secondDefs.IDs())
}

func TestResolve_MissingDefinition(t *testing.T) {
	_, _, err := Resolve(ref("a"), NewDefinitions(def("a", ref("missing"))))
	require.Error(t, err)

	var resErr *TypeResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "missing", resErr.DefinitionID)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestResolve_Cycle(t *testing.T) {
	tests := []struct {
		name   string
		defs   Definitions
		start  *datatype.Reference
		wantAt string
	}{
		{"self", NewDefinitions(def("a", ref("a"))), ref("a"), "a"},
		{"two step", NewDefinitions(def("a", ref("b")), def("b", ref("a"))), ref("a"), "b"},
		{"through locals", NewDefinitions(def("a", ref("b", def("b", ref("a"))))), ref("a"), "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Resolve(tt.start, tt.defs)
			require.Error(t, err)

			var cycleErr *CycleError
			require.ErrorAs(t, err, &cycleErr)
			assert.Equal(t, tt.wantAt, cycleErr.At)
		})
	}
}

func TestResolve_LongChainWithinDefaultLimit(t *testing.T) {
	const length = 300

	leaf := &datatype.String{}
	defs := []datatype.TypeDefinition{def(fmt.Sprintf("d%d", length), leaf)}

	for i := 1; i < length; i++ {
		defs = append(defs, def(fmt.Sprintf("d%d", i), ref(fmt.Sprintf("d%d", i+1))))
	}

	got, _, err := Default().Resolve(ref("d1"), NewDefinitions(defs...))
	require.NoError(t, err)
	assert.Same(t, leaf, got)
}

func TestResolve_MaxDepth(t *testing.T) {
	defs := NewDefinitions(def("a", ref("b")), def("b", ref("c")), def("c", &datatype.Null{}))

	_, _, err := Resolver{MaxDepth: 2}.Resolve(ref("a"), defs)

	var depthErr *DepthExceededError
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, 2, depthErr.Limit)
	assert.Equal(t, "c", depthErr.At)

	_, _, err = Resolver{MaxDepth: 3}.Resolve(ref("a"), defs)
	assert.NoError(t, err)
}

func TestResolve_Nil(t *testing.T) {
	_, _, err := Resolve(nil, Definitions{})
	assert.True(t, errors.Is(err, ErrNilType))
}

func TestMergeLocalDefinitions(t *testing.T) {
	base := NewDefinitions(def("a", &datatype.String{}))

	t.Run("no locals returns the same table", func(t *testing.T) {
		merged := MergeLocalDefinitions(base, &datatype.Integer{})
		assert.Equal(t, base, merged)
	})

	t.Run("locals overwrite on collision", func(t *testing.T) {
		withLocals := &datatype.Object{Base: datatype.Base{Defs: []datatype.TypeDefinition{
			def("a", &datatype.Boolean{}),
			def("b", &datatype.Null{}),
		}}}

		merged := MergeLocalDefinitions(base, withLocals)
		assert.Equal(t, []string{"a", "b"}, merged.IDs())
		assert.Equal(t, 2, merged.Len())

		a, _ := merged.Lookup("a")
		assert.Equal(t, datatype.KindBoolean, a.Type.Kind())

		original, _ := base.Lookup("a")
		assert.Equal(t, datatype.KindString, original.Type.Kind())
	})

	t.Run("locals already visible keep the same table", func(t *testing.T) {
		a, _ := base.Lookup("a")
		merged := MergeLocalDefinitions(base, &datatype.Object{Base: datatype.Base{Defs: []datatype.TypeDefinition{a}}})
		assert.Equal(t, base, merged)
	})

	t.Run("later local wins within one list", func(t *testing.T) {
		merged := NewDefinitions(def("a", &datatype.String{}), def("a", &datatype.Integer{}))
		a, _ := merged.Lookup("a")
		assert.Equal(t, datatype.KindInteger, a.Type.Kind())
	})

	assert.True(t, Definitions{}.IsEmpty())
	assert.False(t, base.IsEmpty())
}
