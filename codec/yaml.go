package codec

import (
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML document into a seed mapping for
// confstore.New.
func UnmarshalYAML(data []byte) (map[string]any, error) {
	var seed map[string]any
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, &DecodeError{Format: "yaml", Err: err}
	}
	return seed, nil
}
