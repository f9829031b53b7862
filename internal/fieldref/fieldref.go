// Package fieldref resolves expression field references against a message
// schema, producing the element identifiers placed into compiled expressions.
package fieldref

import (
	"fmt"
	"strings"

	"datamapper/internal/datatype"
	"datamapper/internal/expr"
	"datamapper/internal/index"
	"datamapper/internal/match"
	"datamapper/internal/resolve"
)

// DefaultSeparator joins the ids of a resolved path.
const DefaultSeparator = "/"

// NotFoundError reports a path element or constant that does not exist.
type NotFoundError struct {
	Ref         expr.FieldReference
	Element     string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s: element %q not found", e.Ref, e.Element)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

// Resolver maps field references to "<KIND>:<id>/<id>" identifiers. Path
// elements match attribute ids first and attribute names second.
type Resolver struct {
	schema    datatype.MessageSchema
	constants []datatype.Constant
	indexer   index.Indexer
	separator string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSeparator sets the string joining resolved ids.
func WithSeparator(sep string) Option {
	return func(r *Resolver) { r.separator = sep }
}

// WithTypeResolver sets the resolver used for reference types.
func WithTypeResolver(tr resolve.Resolver) Option {
	return func(r *Resolver) { r.indexer = index.Indexer{Resolver: tr} }
}

// New returns a Resolver over schema and constants.
func New(schema datatype.MessageSchema, constants []datatype.Constant, opts ...Option) *Resolver {
	r := &Resolver{
		schema:    schema,
		constants: constants,
		indexer:   index.Indexer{Resolver: resolve.Default()},
		separator: DefaultSeparator,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Func adapts r to an expr.Resolver.
func (r *Resolver) Func() expr.Resolver {
	return r.Resolve
}

// Resolve implements expr.Resolver.
func (r *Resolver) Resolve(ref expr.FieldReference) (string, error) {
	if len(ref.Path) == 0 {
		return "", fmt.Errorf("%s: empty path", ref)
	}

	if ref.Kind == expr.KindConstant {
		return r.constant(ref)
	}

	entries, err := r.roots(ref.Kind)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(ref.Path))

	for i, elem := range ref.Path {
		entry, ok := findEntry(entries, elem)
		if !ok {
			return "", &NotFoundError{Ref: ref, Element: elem, Suggestions: suggestions(elem, entries)}
		}

		ids = append(ids, entry.Attribute.ID)

		if i == len(ref.Path)-1 {
			break
		}

		entries, err = r.indexer.Children(entry.Attribute.Type, entry.Context)
		if err != nil {
			return "", fmt.Errorf("%s: %w", ref, err)
		}
	}

	return string(ref.Kind) + ":" + strings.Join(ids, r.separator), nil
}

func (r *Resolver) constant(ref expr.FieldReference) (string, error) {
	name := ref.Path[0]

	names := make([]string, 0, len(r.constants))

	for _, c := range r.constants {
		if c.Name == name || c.ID == name {
			return string(expr.KindConstant) + ":" + c.ID, nil
		}

		names = append(names, c.Name)
	}

	return "", &NotFoundError{Ref: ref, Element: name, Suggestions: match.Suggest(name, names, 3)}
}

func (r *Resolver) roots(kind expr.FieldKind) ([]index.Entry, error) {
	switch kind {
	case expr.KindHeader:
		return attributeEntries(r.schema.Headers), nil
	case expr.KindProperty:
		return attributeEntries(r.schema.Properties), nil
	case expr.KindBody:
		if r.schema.Body == nil {
			return nil, nil
		}

		entries, err := r.indexer.Children(r.schema.Body, resolve.Definitions{})
		if err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}

		return entries, nil
	default:
		return nil, fmt.Errorf("unknown field kind %q", kind)
	}
}

func attributeEntries(attrs []datatype.Attribute) []index.Entry {
	entries := make([]index.Entry, 0, len(attrs))
	for _, a := range attrs {
		entries = append(entries, index.Entry{Attribute: a})
	}

	return entries
}

func findEntry(entries []index.Entry, elem string) (index.Entry, bool) {
	for _, e := range entries {
		if e.Attribute.ID == elem {
			return e, true
		}
	}

	for _, e := range entries {
		if e.Attribute.Name == elem {
			return e, true
		}
	}

	return index.Entry{}, false
}

func suggestions(elem string, entries []index.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Attribute.Name)
	}

	return match.Suggest(elem, names, 3)
}
