package confstore

// Configurable is the two-operation surface an embedding type exposes by
// holding a Store and delegating to it. Composition replaces the
// extend-a-base-class pattern: application types own a Store (or a
// Configurable) instead of inheriting one.
type Configurable interface {
	// Get returns the current value of the named property.
	Get(name string) (any, error)

	// Snapshot returns a defensive copy of every property's value.
	Snapshot() map[string]any

	// Set writes a value to the named property.
	Set(name string, value any) error

	// SetAll applies each pair as a single-property write.
	SetAll(values map[string]any) error
}

var _ Configurable = (*Store)(nil)

// NewConfigurable builds a store exposed only through the Configurable
// surface, for callers that want delegation without the full Store API.
func NewConfigurable(spec map[string]any, opts ...Option) (Configurable, error) {
	return New(spec, opts...)
}
