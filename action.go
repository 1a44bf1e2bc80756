package functional

// Action1 wraps a one-argument function run only for its side effects.
type Action1[A any] struct {
	fn Consumer[A]
}

// NewAction1 wraps fn. A nil fn yields ErrInvalidArgument.
func NewAction1[A any](fn Consumer[A]) (*Action1[A], error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewAction1", "nil consumer")
	}
	return &Action1[A]{fn: fn}, nil
}

// Invoke runs the wrapped function. A panic inside it reaches the caller
// untouched.
func (a *Action1[A]) Invoke(arg A) {
	a.fn(arg)
}

// Action2 wraps a two-argument function run only for its side effects.
type Action2[A, B any] struct {
	fn BiConsumer[A, B]
}

// NewAction2 wraps fn. A nil fn yields ErrInvalidArgument.
func NewAction2[A, B any](fn BiConsumer[A, B]) (*Action2[A, B], error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewAction2", "nil consumer")
	}
	return &Action2[A, B]{fn: fn}, nil
}

// Invoke runs the wrapped function with arg1 and arg2.
func (a *Action2[A, B]) Invoke(arg1 A, arg2 B) {
	a.fn(arg1, arg2)
}
