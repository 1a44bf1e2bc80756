package functional

// Predicate1 wraps a one-argument boolean function.
type Predicate1[A any] struct {
	fn PredicateFunc[A]
}

// NewPredicate1 wraps fn. A nil fn yields ErrInvalidArgument.
func NewPredicate1[A any](fn PredicateFunc[A]) (*Predicate1[A], error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewPredicate1", "nil predicate")
	}
	return &Predicate1[A]{fn: fn}, nil
}

func (p *Predicate1[A]) valid() bool {
	return p != nil && p.fn != nil
}

// Test reports whether a satisfies the predicate.
func (p *Predicate1[A]) Test(a A) bool {
	return p.fn(a)
}

// And returns a predicate that is true when both p and other are. other is
// not evaluated when p is false.
func (p *Predicate1[A]) And(other *Predicate1[A]) (*Predicate1[A], error) {
	if !p.valid() || !other.valid() {
		return nil, InvalidArgument("functional.Predicate1.And", "nil operand")
	}
	first, second := p.fn, other.fn
	return &Predicate1[A]{fn: func(a A) bool {
		return first(a) && second(a)
	}}, nil
}

// Or returns a predicate that is true when either p or other is. other is
// not evaluated when p is true.
func (p *Predicate1[A]) Or(other *Predicate1[A]) (*Predicate1[A], error) {
	if !p.valid() || !other.valid() {
		return nil, InvalidArgument("functional.Predicate1.Or", "nil operand")
	}
	first, second := p.fn, other.fn
	return &Predicate1[A]{fn: func(a A) bool {
		return first(a) || second(a)
	}}, nil
}

// Negate returns the logical complement of p. It panics with an
// ErrInvalidArgument error if p wraps no function.
func (p *Predicate1[A]) Negate() *Predicate1[A] {
	if !p.valid() {
		panic(InvalidArgument("functional.Predicate1.Negate", "nil predicate"))
	}
	fn := p.fn
	return &Predicate1[A]{fn: func(a A) bool {
		return !fn(a)
	}}
}

// Predicate2 wraps a two-argument boolean function.
type Predicate2[A, B any] struct {
	fn BiPredicateFunc[A, B]
}

// NewPredicate2 wraps fn. A nil fn yields ErrInvalidArgument.
func NewPredicate2[A, B any](fn BiPredicateFunc[A, B]) (*Predicate2[A, B], error) {
	if fn == nil {
		return nil, InvalidArgument("functional.NewPredicate2", "nil predicate")
	}
	return &Predicate2[A, B]{fn: fn}, nil
}

func (p *Predicate2[A, B]) valid() bool {
	return p != nil && p.fn != nil
}

// Test reports whether a and b satisfy the predicate.
func (p *Predicate2[A, B]) Test(a A, b B) bool {
	return p.fn(a, b)
}

// And short-circuits like &&.
func (p *Predicate2[A, B]) And(other *Predicate2[A, B]) (*Predicate2[A, B], error) {
	if !p.valid() || !other.valid() {
		return nil, InvalidArgument("functional.Predicate2.And", "nil operand")
	}
	first, second := p.fn, other.fn
	return &Predicate2[A, B]{fn: func(a A, b B) bool {
		return first(a, b) && second(a, b)
	}}, nil
}

// Or short-circuits like ||.
func (p *Predicate2[A, B]) Or(other *Predicate2[A, B]) (*Predicate2[A, B], error) {
	if !p.valid() || !other.valid() {
		return nil, InvalidArgument("functional.Predicate2.Or", "nil operand")
	}
	first, second := p.fn, other.fn
	return &Predicate2[A, B]{fn: func(a A, b B) bool {
		return first(a, b) || second(a, b)
	}}, nil
}

// Negate returns the logical complement of p. It panics with an
// ErrInvalidArgument error if p wraps no function.
func (p *Predicate2[A, B]) Negate() *Predicate2[A, B] {
	if !p.valid() {
		panic(InvalidArgument("functional.Predicate2.Negate", "nil predicate"))
	}
	fn := p.fn
	return &Predicate2[A, B]{fn: func(a A, b B) bool {
		return !fn(a, b)
	}}
}
