// Package kind classifies runtime values into a closed set of
// configuration kinds.
//
// The same classification is used when a property's accepted kinds are
// inferred from its initial value and when a write is checked against
// them, so a value accepted at seed time can never be spuriously
// rejected later.
package kind

import (
	"fmt"
	"reflect"
)

// Kind is the coarse runtime classification of a configuration value.
type Kind uint8

const (
	// Invalid represents values outside the supported classification
	// (channels, unsafe pointers, complex numbers).
	Invalid Kind = iota

	// Bool represents boolean values.
	Bool

	// Number represents all integer and floating-point values.
	Number

	// String represents string values.
	String

	// Func represents callable values.
	Func

	// Object represents maps, slices, arrays, structs, pointers and nil.
	Object
)

// String returns the kind tag used in descriptors and error messages.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Func:
		return "function"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Parse maps a descriptor tag to its Kind.
func Parse(tag string) (Kind, error) {
	switch tag {
	case "boolean":
		return Bool, nil
	case "number":
		return Number, nil
	case "string":
		return String, nil
	case "function":
		return Func, nil
	case "object":
		return Object, nil
	default:
		return Invalid, fmt.Errorf("unknown kind tag %q", tag)
	}
}

// Of classifies a value. Every supported value maps to exactly one Kind;
// nil classifies as Object.
func Of(v any) Kind {
	if v == nil {
		return Object
	}

	switch v.(type) {
	case bool:
		return Bool
	case string:
		return String
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Number
	}

	// Named types and composites need reflection.
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return Bool
	case reflect.String:
		return String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Func:
		return Func
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct,
		reflect.Pointer, reflect.Interface:
		return Object
	default:
		return Invalid
	}
}

// Known returns every valid kind in tag order.
func Known() []Kind {
	return []Kind{Bool, Number, String, Func, Object}
}

// Contains reports whether ks includes k.
func Contains(ks []Kind, k Kind) bool {
	for _, have := range ks {
		if have == k {
			return true
		}
	}
	return false
}

// Tags returns the tag for each kind, preserving order.
func Tags(ks []Kind) []string {
	tags := make([]string, len(ks))
	for i, k := range ks {
		tags[i] = k.String()
	}
	return tags
}
