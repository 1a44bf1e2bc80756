package functional

// Supplier wraps a zero-argument producer. Unlike lazy.Value, the producer
// runs on every Get.
type Supplier[T any] struct {
	fn Producer[T]
}

// NewSupplier wraps fn. A nil fn yields ErrInvalidArgument.
func NewSupplier[T any](fn Producer[T]) (*Supplier[T], error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewSupplier", "nil producer")
	}
	return &Supplier[T]{fn: fn}, nil
}

// Get runs the producer and returns its result.
func (s *Supplier[T]) Get() T {
	return s.fn()
}

// BooleanSupplier is a Supplier specialized to bool.
type BooleanSupplier struct {
	Supplier[bool]
}

// NewBooleanSupplier wraps fn. A nil fn yields ErrInvalidArgument.
func NewBooleanSupplier(fn BooleanProducer) (*BooleanSupplier, error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewBooleanSupplier", "nil producer")
	}
	return &BooleanSupplier{Supplier: Supplier[bool]{fn: Producer[bool](fn)}}, nil
}

// GetAsBoolean runs the producer and returns its flag.
func (s *BooleanSupplier) GetAsBoolean() bool {
	return s.fn()
}
