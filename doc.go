// Package confstore provides an in-memory store of named, typed
// configuration properties.
//
// Each property carries a non-empty set of accepted kinds, a baseline
// default, a current value and an optional validator predicate. A store
// is seeded once from a mapping of names to raw values or Descriptors:
//
//	store, err := confstore.New(map[string]any{
//	    "verbose": false,
//	    "name": confstore.Descriptor{
//	        Value:     "bar",
//	        Types:     []string{"string"},
//	        Validator: validate.NonEmpty(),
//	    },
//	})
//
// Writes replace a property's value after kind and validator checks;
// reads return the current value or a typed view of it. Behavior flags
// fixed at construction allow writes to create unknown properties
// (WithUnknownProperties) or skip kind checks (WithTypeMismatch).
//
// All operations are synchronous and run to completion. Failures abort
// only the operation in progress and leave the store unchanged.
package confstore
