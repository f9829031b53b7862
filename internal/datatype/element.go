package datatype

import "strings"

const (
	// MarkupPrefix starts the name of an attribute rendered as an XML attribute.
	MarkupPrefix = "@"
	// TextName is the name of an attribute rendered as element text.
	TextName = "#text"
)

// Element is the common view of attributes and constants.
type Element interface {
	ElementID() string
	ElementName() string
	ElementType() DataType
}

// Attribute is a named field of an object, a header or a property.
type Attribute struct {
	ID           string
	Name         string
	Type         DataType
	Metadata     Metadata
	DefaultValue string
	Required     bool
}

func (a Attribute) ElementID() string     { return a.ID }
func (a Attribute) ElementName() string   { return a.Name }
func (a Attribute) ElementType() DataType { return a.Type }

// IsMarkup reports whether the attribute is rendered as an XML attribute.
func (a Attribute) IsMarkup() bool { return strings.HasPrefix(a.Name, MarkupPrefix) }

// IsText reports whether the attribute is rendered as element text.
func (a Attribute) IsText() bool { return a.Name == TextName }

// Constant is a named value available as a mapping source.
type Constant struct {
	ID            string
	Name          string
	Type          DataType
	Metadata      Metadata
	ValueSupplier ValueSupplier
}

func (c Constant) ElementID() string     { return c.ID }
func (c Constant) ElementName() string   { return c.Name }
func (c Constant) ElementType() DataType { return c.Type }

// ValueSupplier produces the value of a constant: GivenValue or GeneratedValue.
type ValueSupplier interface {
	supplierKind() string
}

// GivenValue is a literal constant value.
type GivenValue struct {
	Value string
}

// GeneratedValue is computed by a named generator at run time.
type GeneratedValue struct {
	Generator  string
	Parameters []string
}

func (GivenValue) supplierKind() string     { return "given" }
func (GeneratedValue) supplierKind() string { return "generated" }

// MessageSchema describes the structure of a message.
type MessageSchema struct {
	Headers    []Attribute
	Properties []Attribute
	Body       DataType
}
