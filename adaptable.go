package middlewrap

// Adaptable is the set of function signatures accepted by Of.
type Adaptable[Req, Res any] interface {
	func(Req, Res) |
		func(Req, Res) error |
		func(Req, Res) (any, error) |
		func(Req, Res) *Promise |
		func(Req, Res, Next) |
		func(Req, Res, Next) error |
		func(Req, Res, Next) (any, error) |
		Func[Req, Res]
}

// Of converts any of the Adaptable signatures into a Func.
func Of[Req, Res any, F Adaptable[Req, Res]](fn F) Func[Req, Res] {
	switch t := any(fn).(type) {
	case func(Req, Res):
		return func(req Req, res Res, _ Next) (any, error) {
			t(req, res)
			return nil, nil
		}
	case func(Req, Res) error:
		return func(req Req, res Res, _ Next) (any, error) {
			return nil, t(req, res)
		}
	case func(Req, Res) (any, error):
		return func(req Req, res Res, _ Next) (any, error) {
			return t(req, res)
		}
	case func(Req, Res) *Promise:
		return func(req Req, res Res, _ Next) (any, error) {
			if p := t(req, res); p != nil {
				return p, nil
			}
			return nil, nil
		}
	case func(Req, Res, Next):
		return func(req Req, res Res, next Next) (any, error) {
			t(req, res, next)
			return nil, nil
		}
	case func(Req, Res, Next) error:
		return func(req Req, res Res, next Next) (any, error) {
			return nil, t(req, res, next)
		}
	case func(Req, Res, Next) (any, error):
		return t
	}
	return any(fn).(Func[Req, Res])
}

// Async returns a Func that runs fn on its own goroutine and hands back a
// *Promise for its result. Errors and panics from fn reject the Promise
// instead of surfacing synchronously.
func Async[Req, Res any](fn Func[Req, Res]) Func[Req, Res] {
	return func(req Req, res Res, next Next) (any, error) {
		return Go(func() (any, error) {
			return fn(req, res, next)
		}), nil
	}
}
