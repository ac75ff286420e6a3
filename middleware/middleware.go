// Package middleware bridges middlewrap middleware to net/http.
//
// Middleware built here take the *http.Request first and the
// http.ResponseWriter second, and can be used anywhere a
// `Wrap(http.Handler) http.Handler` style middleware is accepted.
package middleware

import (
	"net/http"

	"github.com/lestrrat-go/middlewrap"
)

type Interface interface {
	Wrap(http.Handler) http.Handler
}

// Func is a middlewrap middleware operating on net/http values.
type Func = middlewrap.Func[*http.Request, http.ResponseWriter]

// ErrorHandler writes the response for an error passed to the continuation.
type ErrorHandler func(http.ResponseWriter, *http.Request, error)

type config struct {
	errorHandler ErrorHandler
}

type Option func(*config)

// WithErrorHandler replaces the handler that is called when the
// middleware fails. The default writes the status of a StatusError, or
// 500 Internal Server Error for any other error.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		c.errorHandler = h
	}
}
