package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"datamapper/internal/datatype"
)

// --- ElementReference decoding ---

// decodeElementReference accepts either the shorthand string form or a map
// discriminated by "type" (constant | attribute).
func decodeElementReference(node *yaml.Node) (ElementReference, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string

		err := node.Decode(&s)
		if err != nil {
			return nil, err
		}

		ref, err := ParseReference(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return ref, nil

	case yaml.MappingNode:
		var raw struct {
			Type string    `yaml:"type"`
			Name string    `yaml:"name"`
			Kind string    `yaml:"kind"`
			Path yaml.Node `yaml:"path"`
		}

		err := node.Decode(&raw)
		if err != nil {
			return nil, err
		}

		switch raw.Type {
		case "constant":
			if raw.Name == "" {
				return nil, fmt.Errorf("line %d: constant reference has no name", node.Line)
			}

			return ConstantReference{Name: raw.Name}, nil
		case "attribute", "":
			var ref AttributeReference

			err := ref.UnmarshalYAML(node)
			if err != nil {
				return nil, err
			}

			return ref, nil
		default:
			return nil, fmt.Errorf("line %d: unknown element reference type %q (expected constant or attribute)", node.Line, raw.Type)
		}

	default:
		return nil, fmt.Errorf("line %d: expected string or map for element reference, got %v", node.Line, node.Kind)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler for AttributeReference.
// Accepts "body.a.b" or {kind: body, path: [a, b]}.
func (r *AttributeReference) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string

		err := node.Decode(&s)
		if err != nil {
			return err
		}

		ref, err := ParseAttributeReference(s)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*r = ref

		return nil
	}

	var raw struct {
		Kind string   `yaml:"kind"`
		Path []string `yaml:"path"`
	}

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	kind, err := ParseAttributeKind(raw.Kind)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*r = AttributeReference{Kind: kind, Path: raw.Path}

	return nil
}

// MarshalYAML outputs the map form of an attribute reference.
func (r AttributeReference) MarshalYAML() (any, error) {
	return map[string]any{"kind": string(r.Kind), "path": []string(r.Path)}, nil
}

// --- Action decoding ---

// UnmarshalYAML implements yaml.Unmarshaler for Action.
func (a *Action) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ID             string             `yaml:"id"`
		Sources        yaml.Node          `yaml:"sources"`
		Target         AttributeReference `yaml:"target"`
		Transformation *Transformation    `yaml:"transformation"`
		Metadata       datatype.Metadata  `yaml:"metadata"`
	}

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	var sources []ElementReference

	switch {
	case raw.Sources.Kind == 0, raw.Sources.ShortTag() == "!!null":
	case raw.Sources.Kind == yaml.SequenceNode:
		for _, item := range raw.Sources.Content {
			ref, err := decodeElementReference(item)
			if err != nil {
				return fmt.Errorf("action %q: %w", raw.ID, err)
			}

			sources = append(sources, ref)
		}
	default:
		// A single source may be written without a list.
		ref, err := decodeElementReference(&raw.Sources)
		if err != nil {
			return fmt.Errorf("action %q: %w", raw.ID, err)
		}

		sources = append(sources, ref)
	}

	*a = Action{
		ID:             raw.ID,
		Sources:        sources,
		Target:         raw.Target,
		Transformation: raw.Transformation,
		Metadata:       raw.Metadata,
	}

	return nil
}
