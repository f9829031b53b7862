package datatype

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- DataType decoding ---

type wireType struct {
	Name         string           `yaml:"name"`
	ItemType     *yaml.Node       `yaml:"itemType"`
	Schema       *wireSchema      `yaml:"schema"`
	DefinitionID string           `yaml:"definitionId"`
	Types        []yaml.Node      `yaml:"types"`
	Definitions  []TypeDefinition `yaml:"definitions"`
	Metadata     Metadata         `yaml:"metadata"`
}

type wireSchema struct {
	ID         string      `yaml:"id"`
	Attributes []Attribute `yaml:"attributes"`
}

// DecodeType decodes a DataType from a YAML node. A null or missing node
// decodes to a nil DataType.
func DecodeType(node *yaml.Node) (DataType, error) {
	if node == nil || node.Kind == 0 {
		return nil, nil
	}

	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}

		node = node.Content[0]
	}

	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected data type object, got %v", node.Line, node.Kind)
	}

	var w wireType

	err := node.Decode(&w)
	if err != nil {
		return nil, err
	}

	if w.Name == "" {
		return nil, fmt.Errorf("line %d: data type has no name", node.Line)
	}

	kind, err := ParseKind(w.Name)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}

	base := Base{Defs: w.Definitions, Meta: w.Metadata}

	switch kind {
	case KindNull:
		return &Null{Base: base}, nil
	case KindBoolean:
		return &Boolean{Base: base}, nil
	case KindInteger:
		return &Integer{Base: base}, nil
	case KindString:
		return &String{Base: base}, nil
	case KindArray:
		item, err := DecodeType(w.ItemType)
		if err != nil {
			return nil, fmt.Errorf("array item type: %w", err)
		}

		if item == nil {
			return nil, fmt.Errorf("line %d: array has no itemType", node.Line)
		}

		return &Array{Base: base, ItemType: item}, nil
	case KindObject:
		obj := &Object{Base: base}
		if w.Schema != nil {
			obj.Schema = ObjectSchema{ID: w.Schema.ID, Attributes: w.Schema.Attributes}
		}

		return obj, nil
	case KindReference:
		if w.DefinitionID == "" {
			return nil, fmt.Errorf("line %d: reference has no definitionId", node.Line)
		}

		return &Reference{Base: base, DefinitionID: w.DefinitionID}, nil
	default:
		types, err := decodeTypes(w.Types)
		if err != nil {
			return nil, fmt.Errorf("%s member: %w", kind, err)
		}

		switch kind {
		case KindAllOf:
			return &AllOf{Base: base, Types: types}, nil
		case KindAnyOf:
			return &AnyOf{Base: base, Types: types}, nil
		default:
			return &OneOf{Base: base, Types: types}, nil
		}
	}
}

func decodeTypes(nodes []yaml.Node) ([]DataType, error) {
	result := make([]DataType, 0, len(nodes))

	for i := range nodes {
		t, err := DecodeType(&nodes[i])
		if err != nil {
			return nil, err
		}

		if t == nil {
			return nil, fmt.Errorf("line %d: empty data type", nodes[i].Line)
		}

		result = append(result, t)
	}

	return result, nil
}

// ParseType decodes a single DataType from YAML or JSON data.
func ParseType(data []byte) (DataType, error) {
	var node yaml.Node

	err := yaml.Unmarshal(data, &node)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data type: %w", err)
	}

	t, err := DecodeType(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data type: %w", err)
	}

	if t == nil {
		return nil, errors.New("document does not contain a data type")
	}

	return t, nil
}

// --- TypeDefinition / Attribute / Constant ---

// UnmarshalYAML implements yaml.Unmarshaler for TypeDefinition.
func (d *TypeDefinition) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ID   string    `yaml:"id"`
		Name string    `yaml:"name"`
		Type yaml.Node `yaml:"type"`
	}

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	t, err := DecodeType(&raw.Type)
	if err != nil {
		return fmt.Errorf("definition %q: %w", raw.ID, err)
	}

	if t == nil {
		return fmt.Errorf("line %d: definition %q has no type", node.Line, raw.ID)
	}

	*d = TypeDefinition{ID: raw.ID, Name: raw.Name, Type: t}

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Attribute.
func (a *Attribute) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ID           string    `yaml:"id"`
		Name         string    `yaml:"name"`
		Type         yaml.Node `yaml:"type"`
		Metadata     Metadata  `yaml:"metadata"`
		DefaultValue string    `yaml:"defaultValue"`
		Required     bool      `yaml:"required"`
	}

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	t, err := DecodeType(&raw.Type)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", raw.Name, err)
	}

	if t == nil {
		return fmt.Errorf("line %d: attribute %q has no type", node.Line, raw.Name)
	}

	*a = Attribute{
		ID:           raw.ID,
		Name:         raw.Name,
		Type:         t,
		Metadata:     raw.Metadata,
		DefaultValue: raw.DefaultValue,
		Required:     raw.Required,
	}

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Constant.
func (c *Constant) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ID            string    `yaml:"id"`
		Name          string    `yaml:"name"`
		Type          yaml.Node `yaml:"type"`
		Metadata      Metadata  `yaml:"metadata"`
		ValueSupplier struct {
			Kind       string   `yaml:"kind"`
			Value      string   `yaml:"value"`
			Generator  string   `yaml:"generator"`
			Parameters []string `yaml:"parameters"`
		} `yaml:"valueSupplier"`
	}

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	t, err := DecodeType(&raw.Type)
	if err != nil {
		return fmt.Errorf("constant %q: %w", raw.Name, err)
	}

	if t == nil {
		t = &String{}
	}

	var supplier ValueSupplier

	switch raw.ValueSupplier.Kind {
	case "", "given":
		supplier = GivenValue{Value: raw.ValueSupplier.Value}
	case "generated":
		supplier = GeneratedValue{Generator: raw.ValueSupplier.Generator, Parameters: raw.ValueSupplier.Parameters}
	default:
		return fmt.Errorf("line %d: constant %q: unknown value supplier %q", node.Line, raw.Name, raw.ValueSupplier.Kind)
	}

	*c = Constant{ID: raw.ID, Name: raw.Name, Type: t, Metadata: raw.Metadata, ValueSupplier: supplier}

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for MessageSchema.
func (s *MessageSchema) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Headers    []Attribute `yaml:"headers"`
		Properties []Attribute `yaml:"properties"`
		Body       yaml.Node   `yaml:"body"`
	}

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	body, err := DecodeType(&raw.Body)
	if err != nil {
		return fmt.Errorf("body: %w", err)
	}

	*s = MessageSchema{Headers: raw.Headers, Properties: raw.Properties, Body: body}

	return nil
}

// --- DataType encoding ---

type encodedType struct {
	Name         string              `yaml:"name"`
	ItemType     *encodedType        `yaml:"itemType,omitempty"`
	Schema       *encodedSchema      `yaml:"schema,omitempty"`
	DefinitionID string              `yaml:"definitionId,omitempty"`
	Types        []*encodedType      `yaml:"types,omitempty"`
	Definitions  []encodedDefinition `yaml:"definitions,omitempty"`
	Metadata     Metadata            `yaml:"metadata,omitempty"`
}

type encodedSchema struct {
	ID         string             `yaml:"id,omitempty"`
	Attributes []encodedAttribute `yaml:"attributes"`
}

type encodedAttribute struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Type         *encodedType `yaml:"type"`
	Metadata     Metadata     `yaml:"metadata,omitempty"`
	DefaultValue string       `yaml:"defaultValue,omitempty"`
	Required     bool         `yaml:"required,omitempty"`
}

type encodedDefinition struct {
	ID   string       `yaml:"id"`
	Name string       `yaml:"name,omitempty"`
	Type *encodedType `yaml:"type"`
}

func encode(t DataType) *encodedType {
	if t == nil {
		return nil
	}

	e := &encodedType{Name: t.Kind().String(), Metadata: t.Metadata()}

	for _, d := range t.Definitions() {
		e.Definitions = append(e.Definitions, encodedDefinition{ID: d.ID, Name: d.Name, Type: encode(d.Type)})
	}

	switch tt := t.(type) {
	case *Array:
		e.ItemType = encode(tt.ItemType)
	case *Object:
		s := &encodedSchema{ID: tt.Schema.ID, Attributes: []encodedAttribute{}}
		for _, a := range tt.Schema.Attributes {
			s.Attributes = append(s.Attributes, encodedAttribute{
				ID:           a.ID,
				Name:         a.Name,
				Type:         encode(a.Type),
				Metadata:     a.Metadata,
				DefaultValue: a.DefaultValue,
				Required:     a.Required,
			})
		}

		e.Schema = s
	case *Reference:
		e.DefinitionID = tt.DefinitionID
	default:
		if members, ok := SubTypes(t); ok {
			for _, m := range members {
				e.Types = append(e.Types, encode(m))
			}
		}
	}

	return e
}

// MarshalType serializes a DataType to its YAML wire form.
func MarshalType(t DataType) ([]byte, error) {
	if t == nil {
		return nil, errors.New("nil data type")
	}

	return yaml.Marshal(encode(t))
}
