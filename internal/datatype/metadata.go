package datatype

import "fmt"

// Recognized metadata keys.
const (
	MetaDataFormat    = "dataFormat"
	MetaSourceType    = "sourceType"
	MetaSourceFormat  = "sourceFormat"
	MetaXMLNamespaces = "xmlNamespaces"
)

// Metadata is an open key/value bag attached to types and elements.
type Metadata map[string]any

// Namespace binds an XML prefix to a namespace URI. An empty Alias is the
// default namespace.
type Namespace struct {
	Alias string `yaml:"alias"`
	URI   string `yaml:"uri"`
}

// String returns the value stored under key, or "" when absent or not a string.
func (m Metadata) String(key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}

	return ""
}

// DataFormat returns the data-format indicator, e.g. "xml" or "json".
func (m Metadata) DataFormat() string { return m.String(MetaDataFormat) }

// XMLNamespaces returns the namespace bindings stored under xmlNamespaces in
// declaration order.
func (m Metadata) XMLNamespaces() ([]Namespace, error) {
	raw, ok := m[MetaXMLNamespaces]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case []Namespace:
		return v, nil
	case []any:
		result := make([]Namespace, 0, len(v))

		for i, item := range v {
			entry, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s[%d]: expected {alias, uri}, got %T", MetaXMLNamespaces, i, item)
			}

			alias, _ := entry["alias"].(string)
			uri, _ := entry["uri"].(string)

			result = append(result, Namespace{Alias: alias, URI: uri})
		}

		return result, nil
	default:
		return nil, fmt.Errorf("%s: expected a list, got %T", MetaXMLNamespaces, raw)
	}
}
