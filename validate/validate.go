// Package validate provides validator predicates for configuration
// properties.
//
// A validator decides whether a candidate value may be written to a
// property. Validators report acceptance with a bool and reserve the
// error return for failures of the validator itself, which the store
// surfaces separately from plain rejection.
package validate

import (
	"fmt"
	"regexp"
	"sync"
)

// Func validates a candidate value. A false result rejects the value;
// a non-nil error means the validator itself failed to run.
type Func func(value any) (bool, error)

// Pred adapts a plain predicate into a Func.
func Pred(fn func(value any) bool) Func {
	return func(value any) (bool, error) {
		return fn(value), nil
	}
}

// All accepts a value only if every validator accepts it.
// Evaluation stops at the first rejection or failure.
func All(fns ...Func) Func {
	return func(value any) (bool, error) {
		for _, fn := range fns {
			ok, err := fn(value)
			if err != nil || !ok {
				return ok, err
			}
		}
		return true, nil
	}
}

// Any accepts a value if at least one validator accepts it.
// A validator failure aborts evaluation.
func Any(fns ...Func) Func {
	return func(value any) (bool, error) {
		for _, fn := range fns {
			ok, err := fn(value)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// NonEmpty accepts strings with at least one byte.
func NonEmpty() Func {
	return MinLen(1)
}

// MinLen accepts strings of at least n bytes.
func MinLen(n int) Func {
	return func(value any) (bool, error) {
		s, ok := value.(string)
		if !ok {
			return false, fmt.Errorf("expected string, got %T", value)
		}
		return len(s) >= n, nil
	}
}

// MaxLen accepts strings of at most n bytes.
func MaxLen(n int) Func {
	return func(value any) (bool, error) {
		s, ok := value.(string)
		if !ok {
			return false, fmt.Errorf("expected string, got %T", value)
		}
		return len(s) <= n, nil
	}
}

// Match accepts strings matching the given regex pattern.
// The pattern is compiled lazily on first use.
func Match(pattern string) Func {
	var (
		once sync.Once
		re   *regexp.Regexp
		err  error
	)
	return func(value any) (bool, error) {
		s, ok := value.(string)
		if !ok {
			return false, fmt.Errorf("expected string, got %T", value)
		}
		once.Do(func() {
			re, err = regexp.Compile(pattern)
		})
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		return re.MatchString(s), nil
	}
}

// Range accepts numeric values within [min, max].
func Range(min, max float64) Func {
	return func(value any) (bool, error) {
		f, ok := toFloat64(value)
		if !ok {
			return false, fmt.Errorf("expected number, got %T", value)
		}
		return f >= min && f <= max, nil
	}
}

// OneOf accepts values equal to one of the allowed values.
func OneOf(allowed ...any) Func {
	return func(value any) (bool, error) {
		for _, a := range allowed {
			if valuesEqual(value, a) {
				return true, nil
			}
		}
		return false, nil
	}
}

func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	default:
		return 0, false
	}
}

func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	fa, aNum := toFloat64(a)
	fb, bNum := toFloat64(b)
	if aNum && bNum {
		return fa == fb
	}
	return a == b
}
