package vary

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyValue is the panic value of total extraction on the wrong variant.
	ErrEmptyValue = errors.New("vary: expected Present, got Absent")

	// ErrNotIterable reports a Present/Success payload without an iteration
	// protocol.
	ErrNotIterable = errors.New("vary: payload does not support iteration")
)

// CoerceError returns v unchanged when it already is a non-nil error,
// otherwise a new error built from its printed form.
func CoerceError(v any) error {
	if err, ok := v.(error); ok && !IsNil(err) {
		return err
	}
	return fmt.Errorf("vary: %v", v)
}
