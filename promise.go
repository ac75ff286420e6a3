package middlewrap

import (
	"context"
	"sync/atomic"
)

// Deferred is a value representing an eventually available result.
// A middleware returning a Deferred is treated as asynchronous by Adapt.
type Deferred interface {
	// Then registers handlers that run once the value settles. The
	// returned Promise settles with whatever the selected handler returns.
	Then(onFulfilled func(any) (any, error), onRejected func(error) (any, error)) *Promise
	// Await blocks until the value settles or ctx is done.
	Await(context.Context) (any, error)
}

// Promise is a Deferred that settles exactly once, either with a value
// or with an error.
type Promise struct {
	settled atomic.Bool
	done    chan struct{}
	value   any
	err     error
}

var _ Deferred = (*Promise)(nil)

// AsDeferred reports whether v is a usable Deferred. A nil *Promise is not.
func AsDeferred(v any) (Deferred, bool) {
	d, ok := v.(Deferred)
	if !ok {
		return nil, false
	}
	if p, ok := d.(*Promise); ok && p == nil {
		return nil, false
	}
	return d, true
}

// NewPromise creates a pending Promise. Settle it with Resolve or Reject.
func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// Resolved returns a Promise already fulfilled with v.
func Resolved(v any) *Promise {
	p := NewPromise()
	p.Resolve(v)
	return p
}

// Rejected returns a Promise already rejected with err.
func Rejected(err error) *Promise {
	p := NewPromise()
	p.Reject(err)
	return p
}

// Go runs fn on a new goroutine and returns a Promise that settles with
// its result. A panic inside fn rejects the Promise.
func Go(fn func() (any, error)) *Promise {
	p := NewPromise()
	go func() {
		p.complete(call(fn))
	}()
	return p
}

func call(fn func() (any, error)) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, panicToError(r)
		}
	}()
	return fn()
}

// Resolve fulfills the Promise with v. It reports false if the Promise
// had already settled.
func (p *Promise) Resolve(v any) bool {
	return p.settle(v, nil)
}

// Reject rejects the Promise with err. A nil err is replaced by
// ErrNilReason. It reports false if the Promise had already settled.
func (p *Promise) Reject(err error) bool {
	if err == nil {
		err = ErrNilReason
	}
	return p.settle(nil, err)
}

func (p *Promise) settle(v any, err error) bool {
	if !p.settled.CompareAndSwap(false, true) {
		return false
	}
	p.value = v
	p.err = err
	close(p.done)
	return true
}

// complete settles p from a handler result, flattening a Deferred value.
func (p *Promise) complete(v any, err error) {
	if err != nil {
		p.Reject(err)
		return
	}
	if d, ok := v.(Deferred); ok && d != Deferred(p) {
		p.complete(d.Await(context.Background()))
		return
	}
	p.Resolve(v)
}

// Done returns a channel that is closed once the Promise settles.
func (p *Promise) Done() <-chan struct{} {
	return p.done
}

func (p *Promise) Settled() bool {
	return p.settled.Load()
}

func (p *Promise) Await(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Then registers handlers for the settlement of p. Handlers never run on
// the caller's stack, even if p has already settled. A nil handler passes
// the value or the error through unchanged.
func (p *Promise) Then(onFulfilled func(any) (any, error), onRejected func(error) (any, error)) *Promise {
	next := NewPromise()
	go func() {
		<-p.done
		switch {
		case p.err == nil && onFulfilled != nil:
			next.complete(call(func() (any, error) { return onFulfilled(p.value) }))
		case p.err == nil:
			next.Resolve(p.value)
		case onRejected != nil:
			next.complete(call(func() (any, error) { return onRejected(p.err) }))
		default:
			next.Reject(p.err)
		}
	}()
	return next
}
