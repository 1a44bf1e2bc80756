// Package promise memoizes the first successful result of a deferred
// computation, optionally driven by the caller's context.
package promise

import (
	"context"

	"github.com/softwareeureka/functional"
	"github.com/softwareeureka/functional/lazy"
)

type Promise[T any] func() T
type PromiseWithContext[T any] func(ctx context.Context) (T, error)

// Once returns a Promise that runs f on first call only. It panics if f is
// nil.
func Once[T any](f Promise[T]) Promise[T] {
	if f == nil {
		panic(functional.InvalidArgument("promise.Once", "nil promise"))
	}
	return Promise[T](lazy.FromProducer(functional.Producer[T](f)))
}

// OnceContext returns a PromiseWithContext that runs f until it succeeds,
// then returns that result to every later caller regardless of their
// context. Errors are not memoized. A caller whose context is already done
// gets ctx.Err() without f being run. It panics if f is nil.
func OnceContext[T any](f PromiseWithContext[T]) PromiseWithContext[T] {
	if f == nil {
		panic(functional.InvalidArgument("promise.OnceContext", "nil promise"))
	}
	var once lazy.Once[T]
	return func(ctx context.Context) (T, error) {
		return once.Do(func() (T, error) {
			if err := ctx.Err(); err != nil {
				var zero T
				return zero, err
			}
			return f(ctx)
		})
	}
}
