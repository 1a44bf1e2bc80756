package functional

// Callable1 wraps a one-argument function producing a result. Every call to
// Invoke dispatches to the wrapped function; no result is cached.
type Callable1[A, R any] struct {
	fn Function[A, R]
}

// NewCallable1 wraps fn. A nil fn yields ErrInvalidArgument.
func NewCallable1[A, R any](fn Function[A, R]) (*Callable1[A, R], error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewCallable1", "nil function")
	}
	return &Callable1[A, R]{fn: fn}, nil
}

// Invoke calls the wrapped function with a.
func (c *Callable1[A, R]) Invoke(a A) R {
	return c.fn(a)
}

// Callable2 wraps a two-argument function producing a result.
type Callable2[A, B, R any] struct {
	fn BiFunction[A, B, R]
}

// NewCallable2 wraps fn. A nil fn yields ErrInvalidArgument.
func NewCallable2[A, B, R any](fn BiFunction[A, B, R]) (*Callable2[A, B, R], error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewCallable2", "nil function")
	}
	return &Callable2[A, B, R]{fn: fn}, nil
}

// Invoke calls the wrapped function with a and b.
func (c *Callable2[A, B, R]) Invoke(a A, b B) R {
	return c.fn(a, b)
}

// BinaryOp is a Callable2 whose arguments and result share the type T.
//
// BinaryOp makes no algebraic promises. Reduce folds strictly left to right,
// so callers relying on a different grouping must know the wrapped operation
// is associative.
type BinaryOp[T any] struct {
	fn BinaryOperator[T]
}

// NewBinaryOp wraps fn. A nil fn yields ErrInvalidArgument.
func NewBinaryOp[T any](fn BinaryOperator[T]) (*BinaryOp[T], error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewBinaryOp", "nil operator")
	}
	return &BinaryOp[T]{fn: fn}, nil
}

// Invoke combines a and b with the wrapped operator.
func (o *BinaryOp[T]) Invoke(a, b T) T {
	return o.fn(a, b)
}

// Callable2 returns the operator viewed as a general two-argument callable.
func (o *BinaryOp[T]) Callable2() *Callable2[T, T, T] {
	return &Callable2[T, T, T]{fn: BiFunction[T, T, T](o.fn)}
}

// Reduce applies the operator to initial and each of values in order,
// returning initial when values is empty.
func (o *BinaryOp[T]) Reduce(initial T, values ...T) T {
	acc := initial
	for _, v := range values {
		acc = o.fn(acc, v)
	}
	return acc
}
