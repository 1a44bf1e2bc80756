// Package functional provides typed wrappers around Go function values:
// one- and two-argument callables, same-type binary operators, predicates
// with short-circuiting combinators, side-effecting actions and suppliers.
//
// Wrappers are stateless after construction and may be invoked concurrently
// as long as the wrapped function allows it. Constructors reject nil function
// values with ErrInvalidArgument. Nothing in this package recovers panics or
// rewrites errors raised by wrapped functions.
package functional

type Producer[V any] func() V
type ErrorableProducer[V any] func() (V, error)
type Function[A, V any] func(A) V
type ErrorableFunction[A any, V any] func(A) (V, error)
type BiFunction[A, B, V any] func(A, B) V
type ErrorableBiFunction[A, B, V any] func(A, B) (V, error)

type BinaryOperator[T any] func(T, T) T
type Consumer[A any] func(A)
type BiConsumer[A, B any] func(A, B)
type PredicateFunc[A any] func(A) bool
type BiPredicateFunc[A, B any] func(A, B) bool
type BooleanProducer func() bool
