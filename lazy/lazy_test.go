package lazy

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/softwareeureka/functional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyFunctions(t *testing.T) {
	t.Run("producer", func(t *testing.T) {
		r := require.New(t)
		i := 5
		l := FromProducer(func() int {
			return i
		})
		r.Equal(5, l())
		i = 1
		r.Equal(5, l())
	})
	t.Run("errorable-producer", func(t *testing.T) {
		r := require.New(t)
		i := 5
		l := FromErrorableProducer(func() (int, error) {
			return i, nil
		})
		v, err := l()
		r.Equal(5, v)
		r.NoError(err)
		i = 1
		v, err = l()
		r.Equal(5, v)
		r.NoError(err)

		pErr := errors.New("always")
		l = FromErrorableProducer(func() (int, error) {
			return 1, pErr
		})
		v, err = l()
		r.Equal(0, v)
		r.ErrorIs(err, pErr)
		pErr = nil
		v, err = l()
		r.Equal(1, v)
		r.NoError(err)
	})
	t.Run("nil-producer", func(t *testing.T) {
		r := require.New(t)
		_, err := New[int](nil)
		r.ErrorIs(err, functional.ErrInvalidArgument)
		_, err = NewErrorable[int](nil)
		r.ErrorIs(err, functional.ErrInvalidArgument)
		r.Panics(func() { FromProducer[int](nil) })
		r.Panics(func() { FromErrorableProducer[int](nil) })
	})
}

func TestValue(t *testing.T) {
	t.Run("evaluates-once", func(t *testing.T) {
		r := require.New(t)
		calls := 0
		v, err := New(func() string {
			calls++
			return "Hello World"
		})
		r.NoError(err)
		r.False(v.Evaluated())
		r.Equal(0, calls)

		for i := 0; i < 5; i++ {
			got, err := v.Get()
			r.NoError(err)
			r.Equal("Hello World", got)
		}
		r.Equal(1, calls)
		r.True(v.Evaluated())
		r.Nil(v.producer)
	})
	t.Run("failure-not-memoized", func(t *testing.T) {
		r := require.New(t)
		calls := 0
		v, err := NewErrorable(func() (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})
		r.NoError(err)

		_, err = v.Get()
		r.EqualError(err, "transient")
		r.False(v.Evaluated())

		got, err := v.Get()
		r.NoError(err)
		r.Equal(42, got)
		r.Equal(2, calls)

		got, err = v.Get()
		r.NoError(err)
		r.Equal(42, got)
		r.Equal(2, calls)
	})
	t.Run("panic-not-memoized", func(t *testing.T) {
		r := require.New(t)
		calls := 0
		v, err := New(func() int {
			calls++
			if calls == 1 {
				panic("boom")
			}
			return 7
		})
		r.NoError(err)

		r.PanicsWithValue("boom", func() { v.MustGet() })
		r.False(v.Evaluated())
		r.Equal(7, v.MustGet())
		r.Equal(2, calls)
	})
	t.Run("must-get-error", func(t *testing.T) {
		pErr := errors.New("nope")
		v, err := NewErrorable(func() (int, error) {
			return 0, pErr
		})
		require.NoError(t, err)
		assert.PanicsWithError(t, "lazy: producer failed: nope", func() { v.MustGet() })

		var rec any
		func() {
			defer func() { rec = recover() }()
			v.MustGet()
		}()
		recErr, ok := rec.(error)
		require.True(t, ok)
		assert.ErrorIs(t, recErr, pErr)
	})
}

func TestValueConcurrentGet(t *testing.T) {
	r := require.New(t)

	var calls atomic.Int32
	release := make(chan struct{})
	v, err := New(func() *int {
		calls.Add(1)
		<-release
		n := 1000
		return &n
	})
	r.NoError(err)

	const callers = 16
	results := make([]*int, callers)
	var started, wg sync.WaitGroup
	started.Add(callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			started.Done()
			results[i] = v.MustGet()
		}(i)
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	r.Equal(int32(1), calls.Load())
	for _, got := range results {
		r.Same(results[0], got)
	}
}

func TestOnce(t *testing.T) {
	t.Run("zero-value", func(t *testing.T) {
		r := require.New(t)
		var o Once[string]
		r.False(o.Done())

		calls := 0
		f := func() (string, error) {
			calls++
			return "first", nil
		}
		got, err := o.Do(f)
		r.NoError(err)
		r.Equal("first", got)
		r.True(o.Done())

		got, err = o.Do(func() (string, error) { return "second", nil })
		r.NoError(err)
		r.Equal("first", got)
		r.Equal(1, calls)
	})
	t.Run("failure-not-memoized", func(t *testing.T) {
		r := require.New(t)
		var o Once[int]
		_, err := o.Do(func() (int, error) { return 3, errors.New("transient") })
		r.EqualError(err, "transient")
		r.False(o.Done())

		r.Panics(func() { o.Do(func() (int, error) { panic("boom") }) })
		r.False(o.Done())

		got, err := o.Do(func() (int, error) { return 9, nil })
		r.NoError(err)
		r.Equal(9, got)
	})
}
