package validation

import (
	"errors"
	"fmt"
)

// Contract violations. These are returned as errors and never reported as
// validation messages.
var (
	// ErrInvalidArgument is returned when a required argument is nil or empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilObject is returned by Execute when the object to validate is nil.
	ErrNilObject = fmt.Errorf("%w: object to validate is nil", ErrInvalidArgument)
)

// ErrValidationFailed is matched by every *Error produced from a failed Result.
var ErrValidationFailed = errors.New("validation failed")

func argumentError(name, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, name, reason)
}

// contractViolation carries a contract error out of a rule procedure.
// Execute recovers it and returns the wrapped error; any other panic is
// left alone.
type contractViolation struct {
	err error
}

func (c contractViolation) Error() string { return c.err.Error() }
func (c contractViolation) Unwrap() error { return c.err }

func abort(err error) {
	panic(contractViolation{err: err})
}
