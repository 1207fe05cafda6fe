package confstore

import (
	"github.com/dshills/confstore/kind"
	"github.com/dshills/confstore/validate"
)

// Descriptor describes a property at seed time.
type Descriptor struct {
	// Value is the initial value.
	Value any

	// Types lists the accepted kind tags. When nil, the singleton set
	// containing Value's kind is inferred. When given, it must be
	// non-empty, every tag must be a known kind, and Value's kind must
	// be among them.
	Types []string

	// Default is the baseline value Reset restores. nil means "not
	// supplied" and coerces to Value; a nil baseline is expressed by a
	// nil Value with Default left unset. A supplied Default must have a
	// kind among the resolved accepted kinds.
	Default any

	// Validator, when non-nil, must accept every value written to the
	// property.
	Validator validate.Func
}

// Entry is the stored record for one configuration property.
type Entry struct {
	// Kinds is the non-empty set of accepted kinds, in declaration order.
	Kinds []kind.Kind

	// Default is the property's baseline value.
	Default any

	// Value is the current value. Only Set replaces it.
	Value any

	// Validator, when non-nil, gates every write.
	Validator validate.Func
}

// accepts reports whether k is among the entry's accepted kinds.
func (e *Entry) accepts(k kind.Kind) bool {
	return kind.Contains(e.Kinds, k)
}

// tags returns the accepted kind tags in declaration order.
func (e *Entry) tags() []string {
	return kind.Tags(e.Kinds)
}

// newEntry normalizes one seed item into an Entry. An item that is not a
// Descriptor is treated as the raw initial value.
func newEntry(name string, item any) (*Entry, error) {
	var desc Descriptor
	switch d := item.(type) {
	case Descriptor:
		desc = d
	case *Descriptor:
		if d == nil {
			return nil, &SetupError{Name: name, Reason: "nil descriptor"}
		}
		desc = *d
	default:
		desc = Descriptor{Value: item}
	}

	valueKind := kind.Of(desc.Value)
	if valueKind == kind.Invalid {
		return nil, &SetupError{Name: name, Reason: "value has unsupported kind"}
	}

	kinds, err := seedKinds(name, desc.Types, valueKind)
	if err != nil {
		return nil, err
	}

	def := desc.Default
	if def == nil {
		def = desc.Value
	} else if dk := kind.Of(def); !kind.Contains(kinds, dk) {
		return nil, &SetupError{
			Name:   name,
			Reason: "default's kind (" + dk.String() + ") is not among the declared types",
		}
	}

	return &Entry{
		Kinds:     kinds,
		Default:   def,
		Value:     desc.Value,
		Validator: desc.Validator,
	}, nil
}

// seedKinds resolves a descriptor's accepted kinds. Explicit tags are
// validated strictly; absent tags infer the value's own kind.
func seedKinds(name string, tags []string, valueKind kind.Kind) ([]kind.Kind, error) {
	if tags == nil {
		return []kind.Kind{valueKind}, nil
	}
	if len(tags) == 0 {
		return nil, &SetupError{Name: name, Reason: "types must be a non-empty list of kind tags"}
	}

	kinds := make([]kind.Kind, 0, len(tags))
	for _, tag := range tags {
		k, err := kind.Parse(tag)
		if err != nil {
			return nil, &SetupError{Name: name, Reason: "unknown kind tag", Err: err}
		}
		kinds = append(kinds, k)
	}

	if !kind.Contains(kinds, valueKind) {
		return nil, &SetupError{
			Name:   name,
			Reason: "declared types do not include the value's kind (" + valueKind.String() + ")",
		}
	}
	return kinds, nil
}
