package vm

import (
	"errors"
	"fmt"
)

// Dispatch failure conditions. Every failure returned by Send wraps one
// of these, so callers can test with errors.Is.
var (
	ErrNoMethod        = errors.New("no method")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrInvalidArgument = errors.New("invalid argument")
)

// DispatchError describes a failed send: the receiver kind, the selector
// name, and the underlying condition.
type DispatchError struct {
	Kind     Kind
	Selector string
	Err      error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s#%s: %v", e.Kind, e.Selector, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// typeMismatch reports an argument of the wrong kind.
func typeMismatch(method string, want Kind, got Value) error {
	return fmt.Errorf("%s expects a %s argument, got %s: %w",
		method, want, got.Kind(), ErrTypeMismatch)
}

// invalidArgument reports an argument of the right kind but outside the
// method's domain.
func invalidArgument(method, detail string) error {
	return fmt.Errorf("%s: %s: %w", method, detail, ErrInvalidArgument)
}
