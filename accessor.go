package confstore

import (
	"fmt"
	"time"
)

// GetString returns a string value for the named property.
func (s *Store) GetString(name string) (string, error) {
	v, err := s.Get(name)
	if err != nil {
		return "", err
	}

	str, ok := v.(string)
	if !ok {
		return "", &TypeError{Name: name, Expected: []string{"string"}, Actual: typeName(v)}
	}
	return str, nil
}

// GetInt returns an integer value for the named property.
func (s *Store) GetInt(name string) (int, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}

	switch val := v.(type) {
	case int:
		return val, nil
	case int32:
		return int(val), nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, &TypeError{Name: name, Expected: []string{"number"}, Actual: typeName(v)}
	}
}

// GetInt64 returns an int64 value for the named property.
func (s *Store) GetInt64(name string) (int64, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}

	switch val := v.(type) {
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case float64:
		return int64(val), nil
	default:
		return 0, &TypeError{Name: name, Expected: []string{"number"}, Actual: typeName(v)}
	}
}

// GetFloat64 returns a float64 value for the named property.
func (s *Store) GetFloat64(name string) (float64, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}

	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	default:
		return 0, &TypeError{Name: name, Expected: []string{"number"}, Actual: typeName(v)}
	}
}

// GetBool returns a boolean value for the named property.
func (s *Store) GetBool(name string) (bool, error) {
	v, err := s.Get(name)
	if err != nil {
		return false, err
	}

	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Name: name, Expected: []string{"boolean"}, Actual: typeName(v)}
	}
	return b, nil
}

// GetStringSlice returns a string slice value for the named property.
func (s *Store) GetStringSlice(name string) ([]string, error) {
	v, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case []string:
		result := make([]string, len(val))
		copy(result, val)
		return result, nil
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			str, ok := item.(string)
			if !ok {
				return nil, &TypeError{
					Name:     name,
					Expected: []string{"object"},
					Actual:   fmt.Sprintf("list with %T element", item),
				}
			}
			result[i] = str
		}
		return result, nil
	default:
		return nil, &TypeError{Name: name, Expected: []string{"object"}, Actual: typeName(v)}
	}
}

// GetDuration returns a time.Duration value for the named property.
// Accepts duration values, duration strings (e.g. "500ms") and integers
// (milliseconds).
func (s *Store) GetDuration(name string) (time.Duration, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}

	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, fmt.Errorf("invalid duration string for property '%s': %w", name, err)
		}
		return d, nil
	case int:
		return time.Duration(val) * time.Millisecond, nil
	case int64:
		return time.Duration(val) * time.Millisecond, nil
	case float64:
		return time.Duration(val) * time.Millisecond, nil
	default:
		return 0, &TypeError{Name: name, Expected: []string{"string", "number"}, Actual: typeName(v)}
	}
}

// GetMap returns a map value for the named property. The result is a
// deep copy.
func (s *Store) GetMap(name string) (map[string]any, error) {
	v, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, &TypeError{Name: name, Expected: []string{"object"}, Actual: typeName(v)}
	}
	return cloneMap(m), nil
}

// typeName returns a value's concrete type for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
