package codec

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/confstore"
)

// UnmarshalJSON decodes a JSON object into a seed mapping for
// confstore.New. Numbers decode as float64.
func UnmarshalJSON(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &DecodeError{Format: "json", Err: errors.New("invalid JSON")}
	}

	seed, ok := gjson.ParseBytes(data).Value().(map[string]any)
	if !ok {
		return nil, &DecodeError{Format: "json", Err: errors.New("document is not an object")}
	}
	return seed, nil
}

// MarshalJSON renders a store snapshot as a JSON object. Property names
// are emitted literally; values of function kind cannot be rendered and
// fail the export.
func MarshalJSON(s *confstore.Store) ([]byte, error) {
	out := []byte("{}")
	snapshot := s.Snapshot()

	var err error
	for _, name := range s.Names() {
		out, err = sjson.SetBytes(out, escapeKey(name), snapshot[name])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ApplyJSON applies a JSON object document as a bulk write. Each
// top-level member becomes a single-property write; the first failure
// aborts the remainder.
func ApplyJSON(s *confstore.Store, data []byte) error {
	values, err := UnmarshalJSON(data)
	if err != nil {
		return err
	}
	return s.SetAll(values)
}

// escapeKey escapes path separators so dotted property names stay flat
// keys instead of becoming nested objects.
func escapeKey(name string) string {
	name = strings.ReplaceAll(name, "\\", "\\\\")
	name = strings.ReplaceAll(name, ".", "\\.")
	name = strings.ReplaceAll(name, "*", "\\*")
	name = strings.ReplaceAll(name, "?", "\\?")
	return name
}
