package middleware

import (
	"fmt"
	"net/http"
)

// StatusError is an error that maps to an HTTP status code.
type StatusError interface {
	error
	StatusCode() int
}

// Status returns a StatusError for the given HTTP status code.
func Status(code int) error {
	return statusError(code)
}

type statusError int

func (e statusError) Error() string {
	return fmt.Sprintf("%d %s", int(e), http.StatusText(int(e)))
}

func (e statusError) StatusCode() int {
	return int(e)
}
