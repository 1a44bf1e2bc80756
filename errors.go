package functional

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by constructors and combinators when they
// are handed a nil function value or a nil operand.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgument returns an error wrapping ErrInvalidArgument, prefixed with
// the operation that rejected its input.
func InvalidArgument(op, msg string) error {
	return fmt.Errorf("%s: %s: %w", op, msg, ErrInvalidArgument)
}
