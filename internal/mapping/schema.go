package mapping

import (
	"fmt"
	"strings"

	"datamapper/internal/datatype"
)

// Description is a complete mapping between two message schemas.
type Description struct {
	Source    datatype.MessageSchema `yaml:"source"`
	Target    datatype.MessageSchema `yaml:"target"`
	Constants []datatype.Constant    `yaml:"constants,omitempty"`
	Actions   []Action               `yaml:"actions,omitempty"`
	Metadata  datatype.Metadata      `yaml:"metadata,omitempty"`
}

// Constant returns the constant with the given name.
func (d *Description) Constant(name string) (datatype.Constant, bool) {
	for _, c := range d.Constants {
		if c.Name == name {
			return c, true
		}
	}

	return datatype.Constant{}, false
}

// Action writes one target attribute from a list of sources.
type Action struct {
	ID             string
	Sources        []ElementReference
	Target         AttributeReference
	Transformation *Transformation
	Metadata       datatype.Metadata
}

// Transformation is applied to the sources of an action. The "expression"
// transformation carries its source text as the first parameter.
type Transformation struct {
	Name       string   `yaml:"name"`
	Parameters []string `yaml:"parameters,omitempty"`
}

// ExpressionTransformation is the name of the transformation whose first
// parameter is an expression.
const ExpressionTransformation = "expression"

// Expression returns the expression text of an expression transformation.
func (t *Transformation) Expression() (string, bool) {
	if t == nil || t.Name != ExpressionTransformation || len(t.Parameters) == 0 {
		return "", false
	}

	return t.Parameters[0], true
}

// AttributeKind names the message section an attribute belongs to.
type AttributeKind string

const (
	KindHeader   AttributeKind = "header"
	KindProperty AttributeKind = "property"
	KindBody     AttributeKind = "body"
)

// ParseAttributeKind maps a kind name to an AttributeKind, ignoring case.
func ParseAttributeKind(s string) (AttributeKind, error) {
	switch k := AttributeKind(strings.ToLower(s)); k {
	case KindHeader, KindProperty, KindBody:
		return k, nil
	default:
		return "", fmt.Errorf("unknown attribute kind %q (expected header, property or body)", s)
	}
}

// ElementReference is a mapping source: ConstantReference or AttributeReference.
type ElementReference interface {
	String() string
	elementReference()
}

// ConstantReference refers to a constant by name.
type ConstantReference struct {
	Name string
}

// AttributeReference locates an attribute by section and id path.
type AttributeReference struct {
	Kind AttributeKind
	Path Path
}

func (ConstantReference) elementReference()  {}
func (AttributeReference) elementReference() {}

// String returns the shorthand form "constant.<name>".
func (r ConstantReference) String() string {
	return "constant." + r.Name
}

// String returns the shorthand form "<kind>.<id>.<id>".
func (r AttributeReference) String() string {
	if len(r.Path) == 0 {
		return string(r.Kind)
	}

	return string(r.Kind) + "." + strings.Join(r.Path, ".")
}
