package middlewrap

import "sync/atomic"

// Guard runs the wrapped function on the first call to Call only.
// Every subsequent call is a no-op, whatever the argument.
type Guard[T any] struct {
	called atomic.Bool
	fn     func(T)
}

func NewGuard[T any](fn func(T)) *Guard[T] {
	return &Guard[T]{fn: fn}
}

// Call invokes the wrapped function if, and only if, this is the first
// call. It reports whether the function was run.
func (g *Guard[T]) Call(v T) bool {
	// promise handlers may race with a manual call from the middleware
	if !g.called.CompareAndSwap(false, true) {
		return false
	}
	g.fn(v)
	return true
}

// Disarm marks the guard as called without running the wrapped function.
// It reports false if the function had already been claimed by Call.
func (g *Guard[T]) Disarm() bool {
	return g.called.CompareAndSwap(false, true)
}

func (g *Guard[T]) Called() bool {
	return g.called.Load()
}

// Once returns a function with the same signature as fn that only
// delegates to fn the first time it is called.
func Once[T any](fn func(T)) func(T) {
	g := NewGuard(fn)
	return func(v T) {
		g.Call(v)
	}
}
