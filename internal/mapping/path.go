package mapping

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Path is an ordered sequence of attribute ids.
type Path []string

// Equal reports whether p and other have the same ids in the same order.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// String joins the ids with "/".
func (p Path) String() string {
	return strings.Join(p, "/")
}

// with returns a copy of p with id appended.
func (p Path) with(id string) Path {
	result := make(Path, len(p), len(p)+1)
	copy(result, p)

	return append(result, id)
}

// ParseReference parses the shorthand reference syntax:
// "constant.<name>" or "<kind>.<id>[.<id>...]".
func ParseReference(s string) (ElementReference, error) {
	if s == "" {
		return nil, errors.New("empty reference")
	}

	head, rest, found := strings.Cut(s, ".")
	if !found || rest == "" {
		return nil, fmt.Errorf("invalid reference %q: expected <kind>.<path>", s)
	}

	if strings.EqualFold(head, "constant") {
		return ConstantReference{Name: rest}, nil
	}

	kind, err := ParseAttributeKind(head)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", s, err)
	}

	parts := strings.Split(rest, ".")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid reference %q: empty path segment", s)
		}
	}

	return AttributeReference{Kind: kind, Path: parts}, nil
}

// ParseAttributeReference parses an attribute reference in shorthand syntax.
func ParseAttributeReference(s string) (AttributeReference, error) {
	ref, err := ParseReference(s)
	if err != nil {
		return AttributeReference{}, err
	}

	attr, ok := ref.(AttributeReference)
	if !ok {
		return AttributeReference{}, fmt.Errorf("invalid reference %q: expected an attribute reference", s)
	}

	return attr, nil
}
