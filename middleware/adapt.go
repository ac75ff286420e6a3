package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/lestrrat-go/middlewrap"
)

// Adapt creates an Interface out of fn. When fn signals success the
// downstream handler is served, when it signals failure the error handler
// writes the response instead. If fn returns a middlewrap.Deferred,
// ServeHTTP waits for it to settle or for the request context to be done.
// In the latter case a late success or failure is ignored.
func Adapt(fn Func, options ...Option) Interface {
	cfg := config{errorHandler: DefaultErrorHandler}
	for _, option := range options {
		option(&cfg)
	}
	return &adaptBuilder{
		handler:      middlewrap.Adapt(fn),
		errorHandler: cfg.errorHandler,
	}
}

type adaptBuilder struct {
	handler      middlewrap.Handler[*http.Request, http.ResponseWriter]
	errorHandler ErrorHandler
}

func (b *adaptBuilder) Wrap(h http.Handler) http.Handler {
	return adapted{builder: b, next: h}
}

type adapted struct {
	builder *adaptBuilder
	next    http.Handler
}

func (m adapted) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cont := middlewrap.NewGuard(func(err error) {
		if err != nil {
			m.builder.errorHandler(w, r, err)
			return
		}
		m.next.ServeHTTP(w, r)
	})
	v, _ := m.builder.handler(r, w, func(err error) {
		cont.Call(err)
	})

	d, ok := middlewrap.AsDeferred(v)
	if !ok {
		return
	}
	// failures were already handed to the error handler
	_, _ = d.Await(r.Context())
	if r.Context().Err() == nil {
		return
	}
	// w must not be touched once ServeHTTP returns. If the continuation
	// has already started, wait for it instead.
	if !cont.Disarm() {
		_, _ = d.Await(context.Background())
	}
}

// DefaultErrorHandler writes the status carried by err, if any, or
// 500 Internal Server Error.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	code := http.StatusInternalServerError
	var se StatusError
	if errors.As(err, &se) {
		code = se.StatusCode()
	}
	http.Error(w, http.StatusText(code), code)
}
