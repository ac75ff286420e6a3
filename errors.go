package middlewrap

import (
	"errors"
	"fmt"
)

// ErrHandled is the reason a Promise returned by an adapted Handler is
// rejected with after the original failure was passed to the continuation.
// It carries nothing of the original error.
var ErrHandled = errors.New("middlewrap: error was passed to next")

// ErrNilReason replaces a nil error given to Promise.Reject.
var ErrNilReason = errors.New("middlewrap: promise rejected with nil reason")

// PanicError holds a non-error value recovered from a panicking middleware.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("middlewrap: panic: %v", e.Value)
}

// panicToError converts a recovered value into the error handed to the
// continuation. Values that already are errors are passed as-is.
func panicToError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}
