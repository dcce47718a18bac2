package reportingcloud

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxErrorMessageLength = 256

// OperationError reports a response whose status code is not the one the
// operation succeeds with.
type OperationError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Operation, e.StatusCode, e.Message)
}

// IsOperationError reports whether err is (or wraps) an OperationError.
func IsOperationError(err error) bool {
	var opErr *OperationError
	return errors.As(err, &opErr)
}

func newOperationError(op string, resp *Response) *OperationError {
	msg := strings.TrimSpace(string(resp.Body))
	if len(msg) > maxErrorMessageLength {
		msg = msg[:maxErrorMessageLength]
		for !utf8.ValidString(msg) {
			msg = msg[:len(msg)-1]
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &OperationError{
		Operation:  op,
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}

// noResult hides operation failures from read and mutation methods, which
// report them as an absent result instead. Transport errors pass through.
func noResult(err error) error {
	if IsOperationError(err) {
		return nil
	}
	return err
}
