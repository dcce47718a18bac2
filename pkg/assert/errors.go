package assert

import (
	"errors"
)

// ErrInvalidArgument is matched by every error returned from this package.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a caller input that failed an assertion.
// It is always produced before any request is sent.
type InvalidArgumentError struct {
	// Value is the offending input as received.
	Value any

	// Message is the rendered, human readable failure.
	Message string

	// Cause is the underlying parse or I/O error, if any.
	Cause error
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IsInvalidArgument reports whether err (or anything it wraps) is an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// NewInvalidArgument returns an InvalidArgumentError for checks that live
// outside this package. Placeholders in message are filled with value.
func NewInvalidArgument(value any, message string) error {
	return fail(value, nil, message, nil, value)
}

// fail builds an InvalidArgumentError for value. The first non-empty custom
// message replaces def; in both cases each %s placeholder receives the next
// rendered arg.
func fail(value any, cause error, def string, message []string, args ...any) error {
	tmpl := def
	if len(message) > 0 && message[0] != "" {
		tmpl = message[0]
	}
	return &InvalidArgumentError{
		Value:   value,
		Message: render(tmpl, args...),
		Cause:   cause,
	}
}
