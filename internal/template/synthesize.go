package template

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"datamapper/internal/datatype"
	"datamapper/internal/resolve"
)

// Synthesizer builds example documents.
type Synthesizer struct {
	Resolver resolve.Resolver
	// MaxDepth limits element nesting (0 = unlimited). Recursive types are
	// reported as *resolve.CycleError regardless of it.
	MaxDepth int
}

// Default returns a Synthesizer with the default resolver and no nesting limit.
func Default() Synthesizer {
	return Synthesizer{Resolver: resolve.Default()}
}

// Synthesize renders an example document for t with default limits.
func Synthesize(t datatype.DataType) (string, error) {
	return Default().Synthesize(t)
}

// SynthesizeDocument builds an example document for t with default limits.
func SynthesizeDocument(t datatype.DataType) (*etree.Document, error) {
	return Default().SynthesizeDocument(t)
}

// Synthesize renders an example document for t as a single line of XML
// without a declaration.
func (s Synthesizer) Synthesize(t datatype.DataType) (string, error) {
	doc, err := s.SynthesizeDocument(t)
	if err != nil {
		return "", err
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize template: %w", err)
	}

	return out, nil
}

// SynthesizeDocument builds an example document for t. Markup attributes
// found at the top level are placed on the first top-level element.
func (s Synthesizer) SynthesizeDocument(t datatype.DataType) (*etree.Document, error) {
	if t == nil {
		return nil, resolve.ErrNilType
	}

	v := &visitor{synth: s, scope: scope{defs: resolve.Definitions{}}}

	nodes, err := v.visit(t, v.scope)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()

	var markup []node

	for _, n := range nodes {
		if n.markup != "" {
			markup = append(markup, n)
			continue
		}

		doc.AddChild(n.token)
	}

	if root := doc.Root(); root != nil {
		for _, m := range markup {
			root.CreateAttr(m.markup, "")
		}
	}

	return doc, nil
}

// node is either a token (element or text) or the key of a markup attribute.
type node struct {
	token  etree.Token
	markup string
}

// scope is the context threaded down the type tree. Namespace bindings live
// on the emitted elements as xmlns declarations, where etree resolves them.
type scope struct {
	defs resolve.Definitions
	// expanding lists the types being visited from the root down to here.
	expanding *frame
	depth     int
	at        string
}

type frame struct {
	t      datatype.DataType
	parent *frame
}

func (f *frame) contains(t datatype.DataType) bool {
	for ; f != nil; f = f.parent {
		if f.t == t {
			return true
		}
	}

	return false
}

type visitor struct {
	synth Synthesizer
	scope scope
}

// visit runs a child visitor for t in sc.
func (v *visitor) visit(t datatype.DataType, sc scope) ([]node, error) {
	if t == nil {
		return nil, resolve.ErrNilType
	}

	if sc.expanding.contains(t) {
		return nil, &resolve.CycleError{At: sc.at}
	}

	sc.expanding = &frame{t: t, parent: sc.expanding}

	return datatype.Accept[[]node](t, &visitor{synth: v.synth, scope: sc})
}

func placeholder() ([]node, error) {
	return []node{{token: etree.NewText("")}}, nil
}

func (v *visitor) VisitNull(*datatype.Null) ([]node, error)       { return placeholder() }
func (v *visitor) VisitBoolean(*datatype.Boolean) ([]node, error) { return placeholder() }
func (v *visitor) VisitInteger(*datatype.Integer) ([]node, error) { return placeholder() }
func (v *visitor) VisitString(*datatype.String) ([]node, error)   { return placeholder() }

func (v *visitor) VisitArray(t *datatype.Array) ([]node, error) {
	sc := v.scope
	sc.defs = resolve.MergeLocalDefinitions(sc.defs, t)

	return v.visit(t.ItemType, sc)
}

func (v *visitor) VisitObject(t *datatype.Object) ([]node, error) {
	sc := v.scope
	sc.defs = resolve.MergeLocalDefinitions(sc.defs, t)

	var result []node

	for _, a := range t.Schema.Attributes {
		switch {
		case a.IsMarkup():
			result = append(result, node{markup: strings.TrimPrefix(a.Name, datatype.MarkupPrefix)})
		case a.IsText():
			result = append(result, node{token: etree.NewText("")})
		default:
			el, err := v.element(a, sc)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
			}

			result = append(result, node{token: el})
		}
	}

	return result, nil
}

// element creates the element for a and fills it with the nodes of a's type.
func (v *visitor) element(a datatype.Attribute, sc scope) (*etree.Element, error) {
	if a.Type == nil {
		return nil, resolve.ErrNilType
	}

	defs := resolve.MergeLocalDefinitions(sc.defs, a.Type)

	resolved, defs, err := v.synth.Resolver.Resolve(a.Type, defs)
	if err != nil {
		return nil, err
	}

	namespaces, err := resolved.Metadata().XMLNamespaces()
	if err != nil {
		return nil, err
	}

	sc.defs = defs
	sc.at = a.Name

	sc.depth++
	if limit := v.synth.MaxDepth; limit > 0 && sc.depth > limit {
		return nil, &resolve.DepthExceededError{Limit: limit, At: sc.at}
	}

	el := etree.NewElement(a.Name)

	for _, ns := range namespaces {
		key := "xmlns"
		if ns.Alias != "" {
			key += ":" + ns.Alias
		}

		el.CreateAttr(key, ns.URI)
	}

	children, err := v.visit(resolved, sc)
	if err != nil {
		return nil, err
	}

	for _, child := range children {
		if child.markup != "" {
			el.CreateAttr(child.markup, "")
			continue
		}

		el.AddChild(child.token)
	}

	return el, nil
}

func (v *visitor) VisitReference(t *datatype.Reference) ([]node, error) {
	sc := v.scope

	resolved, defs, err := v.synth.Resolver.Resolve(t, resolve.MergeLocalDefinitions(sc.defs, t))
	if err != nil {
		return nil, err
	}

	sc.defs = defs

	return v.visit(resolved, sc)
}

func (v *visitor) VisitAllOf(t *datatype.AllOf) ([]node, error) { return v.members(t, t.Types) }
func (v *visitor) VisitAnyOf(t *datatype.AnyOf) ([]node, error) { return v.members(t, t.Types) }
func (v *visitor) VisitOneOf(t *datatype.OneOf) ([]node, error) { return v.members(t, t.Types) }

// members concatenates the nodes of every member of a compound type.
func (v *visitor) members(t datatype.DataType, types []datatype.DataType) ([]node, error) {
	sc := v.scope
	sc.defs = resolve.MergeLocalDefinitions(sc.defs, t)

	var result []node

	for _, member := range types {
		nodes, err := v.visit(member, sc)
		if err != nil {
			return nil, err
		}

		result = append(result, nodes...)
	}

	return result, nil
}
