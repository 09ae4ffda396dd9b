package spec

import (
	"fmt"
	"strings"
)

// MissingKeyError reports a required key that is entirely absent.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required key %q", e.Key)
}

// InvalidDimensionError reports a key that is present but null, non-numeric,
// or non-positive.
type InvalidDimensionError struct {
	Key   string
	Value any
}

func (e *InvalidDimensionError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("dimension %q is null", e.Key)
	}
	return fmt.Sprintf("dimension %q has invalid value %v", e.Key, e.Value)
}

// DimensionOutOfBoundsError reports a numeric value beyond the normalizer
// limits.
type DimensionOutOfBoundsError struct {
	Key   string
	Value float64
	Max   float64
}

func (e *DimensionOutOfBoundsError) Error() string {
	return fmt.Sprintf("dimension %q value %g exceeds limit %g", e.Key, e.Value, e.Max)
}

// ValidationError aggregates every violation found in a raw spec. Validation
// never stops at the first problem; callers see the full list in one pass.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return "spec validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual violations to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errs
}
