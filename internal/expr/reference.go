package expr

import (
	"strings"
)

// FieldKind is the upper-case section name of a field reference.
type FieldKind string

const (
	KindHeader   FieldKind = "HEADER"
	KindProperty FieldKind = "PROPERTY"
	KindBody     FieldKind = "BODY"
	KindConstant FieldKind = "CONSTANT"
)

// attributeKinds are the kinds usable in an attribute reference.
var attributeKinds = map[string]FieldKind{
	"header":   KindHeader,
	"property": KindProperty,
	"body":     KindBody,
}

func lookupAttributeKind(word string) (FieldKind, bool) {
	kind, ok := attributeKinds[strings.ToLower(word)]
	return kind, ok
}

// FieldReference identifies a header, property, body or constant location.
// Path elements are unescaped.
type FieldReference struct {
	Kind FieldKind
	Path []string
}

// String renders the reference as "<kind>:<a>/<b>".
func (r FieldReference) String() string {
	return string(r.Kind) + ":" + strings.Join(r.Path, "/")
}

// Resolver maps a field reference to the identifier placed inside ${...}.
type Resolver func(ref FieldReference) (string, error)

// Unescape removes backslash escapes from a path element or constant name.
// A backslash is dropped and the following character is kept, unless that
// character is '_', which is dropped too.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	b.Grow(len(s))

	escaped := false

	for _, r := range s {
		switch {
		case escaped:
			if r != '_' {
				b.WriteRune(r)
			}

			escaped = false
		case r == '\\':
			escaped = true
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
