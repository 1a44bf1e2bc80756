// Package lazy defers a computation until its result is first needed and
// caches the result once it succeeds.
package lazy

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/softwareeureka/functional"
)

// Once guards a single successful evaluation. Do runs its argument until one
// call succeeds, then returns that result to every later caller without
// locking. Callers arriving while an evaluation is in flight wait for it, so
// evaluations never overlap. The zero value is ready to use.
type Once[T any] struct {
	done atomic.Bool
	mu   sync.Mutex
	rv   T
}

// Do returns the cached result if an earlier call succeeded, and otherwise
// runs f. An error or panic from f is handed to the caller unchanged and
// nothing is cached.
func (o *Once[T]) Do(f functional.ErrorableProducer[T]) (T, error) {
	if o.done.Load() {
		return o.rv, nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done.Load() {
		return o.rv, nil
	}

	rv, err := f()
	if err != nil {
		var zero T
		return zero, err
	}
	o.rv = rv
	o.done.Store(true)
	return rv, nil
}

// Done reports whether a call to Do has succeeded.
func (o *Once[T]) Done() bool {
	return o.done.Load()
}

// Value holds a producer that runs on the first successful Get. A producer
// that returns an error or panics leaves the Value unevaluated, and the next
// Get runs it again. Once evaluated, the producer is released.
type Value[T any] struct {
	once     Once[T]
	producer functional.ErrorableProducer[T]
}

// New returns a Value for a producer that cannot fail.
func New[T any](f functional.Producer[T]) (*Value[T], error) {
	if f == nil {
		return nil, functional.InvalidArgument("lazy.New", "nil producer")
	}
	return &Value[T]{producer: func() (T, error) {
		return f(), nil
	}}, nil
}

// NewErrorable returns a Value whose producer may fail. Failures are handed
// back from Get unchanged and are not cached.
func NewErrorable[T any](f functional.ErrorableProducer[T]) (*Value[T], error) {
	if f == nil {
		return nil, functional.InvalidArgument("lazy.NewErrorable", "nil producer")
	}
	return &Value[T]{producer: f}, nil
}

// Get returns the cached result, running the producer first if no earlier
// call has succeeded.
func (v *Value[T]) Get() (T, error) {
	return v.once.Do(v.evaluate)
}

// evaluate runs under the Once lock.
func (v *Value[T]) evaluate() (T, error) {
	rv, err := v.producer()
	if err == nil {
		v.producer = nil
	}
	return rv, err
}

// MustGet is Get for producers that are not expected to fail; it panics on
// error.
func (v *Value[T]) MustGet() T {
	rv, err := v.Get()
	if err != nil {
		panic(fmt.Errorf("lazy: producer failed: %w", err))
	}
	return rv
}

// Evaluated reports whether a Get has completed successfully.
func (v *Value[T]) Evaluated() bool {
	return v.once.Done()
}

// FromProducer returns a Producer that runs f once, on first call, and
// returns the same result afterwards. It panics if f is nil.
func FromProducer[T any](f functional.Producer[T]) functional.Producer[T] {
	v, err := New(f)
	if err != nil {
		panic(err)
	}
	return v.MustGet
}

// FromErrorableProducer returns an ErrorableProducer that runs f until it
// succeeds once and returns that result afterwards. It panics if f is nil.
func FromErrorableProducer[T any](f functional.ErrorableProducer[T]) functional.ErrorableProducer[T] {
	v, err := NewErrorable(f)
	if err != nil {
		panic(err)
	}
	return v.Get
}
