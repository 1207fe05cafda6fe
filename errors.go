package confstore

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by store operations.
var (
	// ErrUnknownProperty indicates the property name is not in the store.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrTypeMismatch indicates a write value's kind is not accepted.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed indicates a write value was rejected by the
	// property's validator.
	ErrValidationFailed = errors.New("validation failed")

	// ErrValidatorFailed indicates the validator itself failed to run.
	ErrValidatorFailed = errors.New("validator failed")

	// ErrBadDescriptor indicates a malformed seed descriptor.
	ErrBadDescriptor = errors.New("bad descriptor")
)

// UnknownPropertyError is returned when an operation targets a property
// name absent from the store.
type UnknownPropertyError struct {
	// Name is the missing property name.
	Name string
}

// Error implements the error interface.
func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("configuration property '%s' does not exist", e.Name)
}

// Is implements error matching for UnknownPropertyError.
func (e *UnknownPropertyError) Is(target error) bool {
	return target == ErrUnknownProperty
}

// TypeError is returned when a value's kind is not among a property's
// accepted kinds.
type TypeError struct {
	// Name is the property name.
	Name string
	// Expected lists the accepted kind tags in declaration order.
	Expected []string
	// Actual is the offending value's kind tag.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type for property '%s': expected %s, got %s",
		e.Name, strings.Join(e.Expected, "|"), e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ValidationError is returned when a property's validator rejects a value.
type ValidationError struct {
	// Name is the property name.
	Name string
	// Value is the rejected value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for property '%s' (value: %v)", e.Name, e.Value)
}

// Is implements error matching for ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// EvalError is returned when a property's validator fails to run,
// either by returning an error or by panicking.
type EvalError struct {
	// Name is the property name.
	Name string
	// Value is the candidate value the validator was invoked with.
	Value any
	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("validator for property '%s' failed on value %v: %v", e.Name, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *EvalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for EvalError.
func (e *EvalError) Is(target error) bool {
	return target == ErrValidatorFailed
}

// SetupError is returned by New when a seed descriptor is malformed.
type SetupError struct {
	// Name is the property whose descriptor is malformed.
	Name string
	// Reason describes what is wrong.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	return fmt.Sprintf("invalid descriptor for property '%s': %s", e.Name, e.Reason)
}

// Unwrap returns the underlying error.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// Is implements error matching for SetupError.
func (e *SetupError) Is(target error) bool {
	return target == ErrBadDescriptor
}
