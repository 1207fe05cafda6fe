package confstore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/confstore/kind"
	"github.com/dshills/confstore/notify"
	"github.com/dshills/confstore/validate"
)

// Store owns a mapping from property name to a typed, validated entry.
// Entries are seeded once at construction and never removed; values are
// replaced only through Set.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry

	// Behavior flags, fixed at construction.
	allowUnknown  bool
	allowMismatch bool

	notifier *notify.Notifier
}

// Option configures a Store.
type Option func(*Store)

// WithUnknownProperties controls whether writing an unseen name creates a
// new entry (kinds and default inferred from the written value) instead
// of failing. Default false.
func WithUnknownProperties(allow bool) Option {
	return func(s *Store) {
		s.allowUnknown = allow
	}
}

// WithTypeMismatch controls whether kind checking on writes is skipped.
// Default false.
func WithTypeMismatch(allow bool) Option {
	return func(s *Store) {
		s.allowMismatch = allow
	}
}

// WithNotifier installs a shared change notifier. By default each store
// owns its own.
func WithNotifier(n *notify.Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// New creates a store seeded from spec. Each spec value is either a raw
// initial value or a Descriptor. Malformed descriptors fail with a
// SetupError.
func New(spec map[string]any, opts ...Option) (*Store, error) {
	s := &Store{
		entries:  make(map[string]*Entry, len(spec)),
		notifier: notify.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for name, item := range spec {
		entry, err := newEntry(name, item)
		if err != nil {
			return nil, err
		}
		s.entries[name] = entry
	}
	return s, nil
}

// Get returns the current value of the named property.
func (s *Store) Get(name string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		return nil, &UnknownPropertyError{Name: name}
	}
	return e.Value, nil
}

// Snapshot returns a deep copy of every property's current value.
// Mutating the result does not affect the store, and later writes do not
// affect previously returned snapshots.
func (s *Store) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]any, len(s.entries))
	for name, e := range s.entries {
		result[name] = cloneValue(e.Value)
	}
	return result
}

// Set writes a value to the named property. Unknown names fail with an
// UnknownPropertyError unless unknown-property admission is enabled, in
// which case a new entry is created with kinds and default inferred from
// the value. Known properties check the value's kind against the entry's
// accepted kinds (unless type-mismatch admission is enabled) and then run
// the entry's validator. On failure the store is left unchanged.
func (s *Store) Set(name string, value any) error {
	s.mu.Lock()

	e, ok := s.entries[name]
	if !ok {
		if !s.allowUnknown {
			s.mu.Unlock()
			return &UnknownPropertyError{Name: name}
		}
		// Admitted entries carry known kinds only, like seeded ones.
		k := kind.Of(value)
		if k == kind.Invalid {
			s.mu.Unlock()
			return &TypeError{Name: name, Expected: kind.Tags(kind.Known()), Actual: k.String()}
		}
		s.entries[name] = &Entry{
			Kinds:   []kind.Kind{k},
			Default: value,
			Value:   value,
		}
		s.mu.Unlock()
		s.notifier.NotifySet(name, nil, value)
		return nil
	}

	if !s.allowMismatch {
		if k := kind.Of(value); !e.accepts(k) {
			s.mu.Unlock()
			return &TypeError{Name: name, Expected: e.tags(), Actual: k.String()}
		}
	}

	if e.Validator != nil {
		ok, err := runValidator(e.Validator, value)
		if err != nil {
			s.mu.Unlock()
			return &EvalError{Name: name, Value: value, Err: err}
		}
		if !ok {
			s.mu.Unlock()
			return &ValidationError{Name: name, Value: value}
		}
	}

	old := e.Value
	e.Value = value
	s.mu.Unlock()

	s.notifier.NotifySet(name, old, value)
	return nil
}

// SetAll applies each pair as a single-property write, in sorted name
// order. The first failure aborts the remaining pairs; writes already
// applied stay applied.
func (s *Store) SetAll(values map[string]any) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Set(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// Reset restores the named property to its baseline default, bypassing
// kind checks and validators (the baseline was accepted at seed time).
func (s *Store) Reset(name string) error {
	s.mu.Lock()

	e, ok := s.entries[name]
	if !ok {
		s.mu.Unlock()
		return &UnknownPropertyError{Name: name}
	}

	old := e.Value
	def := e.Default
	e.Value = def
	s.mu.Unlock()

	s.notifier.NotifySet(name, old, def)
	return nil
}

// ResetAll restores every property to its baseline default.
func (s *Store) ResetAll() {
	for _, name := range s.Names() {
		_ = s.Reset(name)
	}
}

// Has reports whether the named property exists.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[name]
	return ok
}

// Names returns all property names sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kinds returns the accepted kinds of the named property in declaration
// order.
func (s *Store) Kinds(name string) ([]kind.Kind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		return nil, &UnknownPropertyError{Name: name}
	}
	kinds := make([]kind.Kind, len(e.Kinds))
	copy(kinds, e.Kinds)
	return kinds, nil
}

// Default returns the baseline default of the named property.
func (s *Store) Default(name string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		return nil, &UnknownPropertyError{Name: name}
	}
	return e.Default, nil
}

// Defaults returns a copy of every property's baseline default.
func (s *Store) Defaults() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]any, len(s.entries))
	for name, e := range s.entries {
		result[name] = cloneValue(e.Default)
	}
	return result
}

// Subscribe registers an observer for all property changes.
func (s *Store) Subscribe(observer notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(observer)
}

// SubscribeProperty registers an observer for changes to one property.
func (s *Store) SubscribeProperty(name string, observer notify.Observer) *notify.Subscription {
	return s.notifier.SubscribeProperty(name, observer)
}

// runValidator invokes a validator with panic recovery. A panicking
// validator is reported as a validator failure, not a rejection.
func runValidator(fn validate.Func, value any) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("validator panic: %v", r)
		}
	}()
	return fn(value)
}
