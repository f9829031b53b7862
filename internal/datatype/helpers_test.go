package datatype

import "gopkg.in/yaml.v3"

func decodeYAML(src string, v any) error {
	return yaml.Unmarshal([]byte(src), v)
}
