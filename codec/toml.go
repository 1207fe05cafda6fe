package codec

import (
	"github.com/pelletier/go-toml/v2"
)

// UnmarshalTOML decodes a TOML document into a seed mapping for
// confstore.New. Top-level keys become property names; their values
// become initial values.
func UnmarshalTOML(data []byte) (map[string]any, error) {
	var seed map[string]any
	if err := toml.Unmarshal(data, &seed); err != nil {
		return nil, &DecodeError{Format: "toml", Err: err}
	}
	return seed, nil
}
