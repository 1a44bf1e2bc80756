package main

import (
	"github.com/hashicorp/go-hclog"
	"github.com/softwareeureka/functional"
	"github.com/softwareeureka/functional/lazy"
)

// demo is one walkthrough of a function shape. run builds the wrappers from
// literal functions, invokes them and reports through logger.
type demo struct {
	name     string
	synopsis string
	run      func(logger hclog.Logger) error
}

var demos = []demo{
	{
		name:     "bi-consumer",
		synopsis: "Two-argument action, run for its side effect",
		run:      runBiConsumer,
	},
	{
		name:     "bi-function",
		synopsis: "Two-argument function producing a result",
		run:      runBiFunction,
	},
	{
		name:     "binary-operator",
		synopsis: "Two-argument function whose arguments and result share a type",
		run:      runBinaryOperator,
	},
	{
		name:     "predicate",
		synopsis: "One-argument boolean test",
		run:      runPredicate,
	},
	{
		name:     "bi-predicate",
		synopsis: "Two-argument boolean test",
		run:      runBiPredicate,
	},
	{
		name:     "supplier",
		synopsis: "Zero-argument producer, loaded lazily",
		run:      runSupplier,
	},
	{
		name:     "boolean-supplier",
		synopsis: "Zero-argument producer of a flag",
		run:      runBooleanSupplier,
	},
	{
		name:     "consumer",
		synopsis: "One-argument action, run for its side effect",
		run:      runConsumer,
	},
}

func runBiConsumer(logger hclog.Logger) error {
	process, err := functional.NewAction2(func(n int, now bool) {
		if now {
			n *= 2
			logger.Info("processed number", "number", n)
		}
	})
	if err != nil {
		return err
	}
	process.Invoke(20, false)
	process.Invoke(20, true)
	return nil
}

func runBiFunction(logger hclog.Logger) error {
	multiply, err := functional.NewCallable2(func(n, multiplier int) int {
		return n * multiplier
	})
	if err != nil {
		return err
	}
	logger.Info("returned processed number", "result", multiply.Invoke(10, 100))
	return nil
}

func runBinaryOperator(logger hclog.Logger) error {
	multiply, err := functional.NewBinaryOp(func(n, multiplier float64) float64 {
		return n * multiplier
	})
	if err != nil {
		return err
	}
	logger.Info("returned processed number", "result", multiply.Invoke(30, 2.5))
	return nil
}

type predicatePayload struct {
	logger hclog.Logger
}

func (p *predicatePayload) doStuff(bi bool) bool {
	kind := "predicate"
	if bi {
		kind = "bi-predicate"
	}
	p.logger.Info("doing stuff", "kind", kind)
	return true
}

func runPredicate(logger hclog.Logger) error {
	test, err := functional.NewPredicate1(func(p *predicatePayload) bool {
		return p.doStuff(false)
	})
	if err != nil {
		return err
	}
	logger.Debug("tested payload", "result", test.Test(&predicatePayload{logger: logger}))
	return nil
}

func runBiPredicate(logger hclog.Logger) error {
	test, err := functional.NewPredicate2(func(p0, p1 *predicatePayload) bool {
		return p0.doStuff(true) && p1.doStuff(true)
	})
	if err != nil {
		return err
	}
	result := test.Test(&predicatePayload{logger: logger}, &predicatePayload{logger: logger})
	logger.Debug("tested payloads", "result", result)
	return nil
}

// lazyVariable defers handing out v until the returned value is first read.
func lazyVariable[T any](logger hclog.Logger, v T) (*lazy.Value[T], error) {
	return lazy.New(func() T {
		logger.Info("loading lazy variable")
		return v
	})
}

func runSupplier(logger hclog.Logger) error {
	greeting, err := lazyVariable(logger, "Hello World")
	if err != nil {
		return err
	}
	v, err := greeting.Get()
	if err != nil {
		return err
	}
	logger.Info("lazily loaded value", "value", v)
	return nil
}

func runBooleanSupplier(logger hclog.Logger) error {
	supplier, err := functional.NewBooleanSupplier(func() bool { return false })
	if err != nil {
		return err
	}
	logger.Info("flag result", "flag", supplier.GetAsBoolean())
	return nil
}

func runConsumer(logger hclog.Logger) error {
	report, err := functional.NewAction1(func(s string) {
		logger.Info("processed argument", "argument", s)
	})
	if err != nil {
		return err
	}
	report.Invoke("processing this string inside a consumer.")
	return nil
}
