package mapping

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a mapping description from the given path.
func LoadFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML or JSON data into a Description.
func Parse(data []byte) (*Description, error) {
	var d Description

	err := yaml.Unmarshal(data, &d)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping description: %w", err)
	}

	applyDefaults(&d)

	return &d, nil
}

// applyDefaults fills in values for optional fields.
func applyDefaults(d *Description) {
	for i := range d.Actions {
		if d.Actions[i].ID == "" {
			d.Actions[i].ID = uuid.NewString()
		}
	}
}
