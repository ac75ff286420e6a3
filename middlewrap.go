// Package middlewrap adapts middleware written in any of three calling
// conventions to a single one.
//
// A middleware may return a plain value, return a Deferred (such as a
// *Promise), or signal completion by calling the Next continuation it
// receives. Adapt produces a Handler that calls the continuation exactly
// once in all three cases. Synchronous middleware stays synchronous: when
// no Deferred is returned the continuation runs before the Handler returns.
package middlewrap

// Next is the continuation handed to a middleware. A nil error signals
// success, anything else signals failure.
type Next func(error)

// Func is a middleware. A synchronous failure is reported either by
// returning a non-nil error or by panicking.
type Func[Req, Res any] func(req Req, res Res, next Next) (any, error)

// Handler is the function produced by Adapt. next may be nil, in which
// case the fallback continuation is handed to the middleware.
type Handler[Req, Res any] func(req Req, res Res, next Next) (any, error)

type config struct {
	fallback Next
}

type Option func(*config)

// WithFallback sets the continuation used when a Handler is called with a
// nil Next. It is used as given and is not made one-shot.
func WithFallback(next Next) Option {
	return func(c *config) {
		c.fallback = next
	}
}

func defaultFallback() Next {
	return Once(func(err error) {
		if err != nil {
			panic(err)
		}
	})
}

// Adapt wraps fn so that it can be called with a uniform convention.
//
// When the Handler receives a non-nil next, next is guarded so that it
// runs at most once. Errors returned by fn, and panics raised while it
// runs, are passed to next and the Handler returns (nil, nil). If fn
// returns a Deferred, the Handler returns a *Promise that calls next after
// the Deferred settles: on success it is fulfilled with the original
// value, on failure it is rejected with ErrHandled. Any other value is
// returned as-is after next(nil) has run.
//
// When the Handler receives a nil next, fn is called with the fallback
// continuation and its results are returned untouched. Panics are not
// recovered on this path.
func Adapt[Req, Res any](fn Func[Req, Res], options ...Option) Handler[Req, Res] {
	var cfg config
	for _, option := range options {
		option(&cfg)
	}
	if cfg.fallback == nil {
		// shared by every call of the returned Handler
		cfg.fallback = defaultFallback()
	}

	return func(req Req, res Res, next Next) (any, error) {
		if next == nil {
			return fn(req, res, cfg.fallback)
		}
		return invoke(fn, req, res, Next(Once(next)))
	}
}

func invoke[Req, Res any](fn Func[Req, Res], req Req, res Res, next Next) (ret any, err error) {
	defer func() {
		if r := recover(); r != nil {
			next(panicToError(r))
			ret, err = nil, nil
		}
	}()

	v, err := fn(req, res, next)
	if err != nil {
		next(err)
		return nil, nil
	}

	if d, ok := AsDeferred(v); ok {
		return d.Then(
			func(v any) (any, error) {
				if !callNext(next, nil) {
					return nil, ErrHandled
				}
				return v, nil
			},
			func(err error) (any, error) {
				callNext(next, err)
				return nil, ErrHandled
			},
		), nil
	}
	if _, ok := v.(*Promise); ok {
		// nil *Promise
		v = nil
	}

	next(nil)
	return v, nil
}

// callNext runs next(err) from a promise handler and reports whether it
// returned normally. A panic is routed to next, which is already spent.
func callNext(next Next, err error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			next(panicToError(r))
			ok = false
		}
	}()
	next(err)
	return true
}
