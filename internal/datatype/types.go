package datatype

import (
	"fmt"
	"strings"
)

// Kind enumerates the closed set of DataType variants.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindString
	KindArray
	KindObject
	KindReference
	KindAllOf
	KindAnyOf
	KindOneOf
)

var kindNames = [...]string{
	KindNull:      "null",
	KindBoolean:   "boolean",
	KindInteger:   "number",
	KindString:    "string",
	KindArray:     "array",
	KindObject:    "object",
	KindReference: "reference",
	KindAllOf:     "allOf",
	KindAnyOf:     "anyOf",
	KindOneOf:     "oneOf",
}

// String returns the wire discriminator of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// ParseKind maps a wire discriminator to a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("unknown data type %q", s)
}

// DataType is a node of the type tree. The set of implementations is closed;
// use Accept for exhaustive dispatch.
type DataType interface {
	Kind() Kind
	// Definitions returns the type definitions declared local to this type.
	Definitions() []TypeDefinition
	Metadata() Metadata
	sealed()
}

// Base holds the parts common to every DataType.
type Base struct {
	Defs []TypeDefinition
	Meta Metadata
}

func (b Base) Definitions() []TypeDefinition { return b.Defs }
func (b Base) Metadata() Metadata             { return b.Meta }
func (Base) sealed()                          {}

// TypeDefinition is a named, reusable DataType declared in some local scope.
type TypeDefinition struct {
	ID   string
	Name string
	Type DataType
}

type Null struct{ Base }

type Boolean struct{ Base }

type Integer struct{ Base }

type String struct{ Base }

// Array describes a repeated value of ItemType.
type Array struct {
	Base
	ItemType DataType
}

// Object describes a structured value with a fixed attribute list.
type Object struct {
	Base
	Schema ObjectSchema
}

// ObjectSchema is the attribute list of an Object.
type ObjectSchema struct {
	ID         string
	Attributes []Attribute
}

// Reference points at a TypeDefinition by id.
type Reference struct {
	Base
	DefinitionID string
}

type AllOf struct {
	Base
	Types []DataType
}

type AnyOf struct {
	Base
	Types []DataType
}

type OneOf struct {
	Base
	Types []DataType
}

func (*Null) Kind() Kind      { return KindNull }
func (*Boolean) Kind() Kind   { return KindBoolean }
func (*Integer) Kind() Kind   { return KindInteger }
func (*String) Kind() Kind    { return KindString }
func (*Array) Kind() Kind     { return KindArray }
func (*Object) Kind() Kind    { return KindObject }
func (*Reference) Kind() Kind { return KindReference }
func (*AllOf) Kind() Kind     { return KindAllOf }
func (*AnyOf) Kind() Kind     { return KindAnyOf }
func (*OneOf) Kind() Kind     { return KindOneOf }

// SubTypes returns the member types of a compound type, or nil and false for
// any other kind.
func SubTypes(t DataType) ([]DataType, bool) {
	switch c := t.(type) {
	case *AllOf:
		return c.Types, true
	case *AnyOf:
		return c.Types, true
	case *OneOf:
		return c.Types, true
	default:
		return nil, false
	}
}
