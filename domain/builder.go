package domain

import "golang.org/x/exp/constraints"

// Builder accumulates lower and upper bound constraints and finalizes them
// into a Domain. The zero state is the unbounded domain (-∞;∞); every Gt or
// Lt call narrows it, never widens it. The scratch state is local to one
// construction sequence and must not be shared between goroutines.
type Builder[T constraints.Ordered] struct {
	lower, upper Value[T]
}

// New creates a builder holding the unbounded domain (-∞;∞).
func New[T constraints.Ordered]() *Builder[T] {
	return &Builder[T]{
		lower: Infinite[T]{},
		upper: Infinite[T]{},
	}
}

// Gt intersects the accumulated constraints with "greater than v", or
// greater-or-equal when v is inclusive. Across repeated calls the tightest
// (largest) lower bound wins; at an equal boundary value the exclusive
// endpoint is the strictly tighter constraint and replaces the inclusive one.
func (b *Builder[T]) Gt(v Value[T]) *Builder[T] {
	if compareLower(v, b.lower) > 0 {
		b.lower = v
	}
	return b
}

// Lt intersects the accumulated constraints with "less than v", or
// less-or-equal when v is inclusive. Across repeated calls the tightest
// (smallest) upper bound wins, with the same exclusivity tie-break as Gt.
func (b *Builder[T]) Lt(v Value[T]) *Builder[T] {
	if compareUpper(v, b.upper) < 0 {
		b.upper = v
	}
	return b
}

// Domain finalizes the accumulated constraints. Contradictory constraints,
// where the lower bound passed or met the upper bound with any exclusivity,
// collapse to the empty domain.
func (b *Builder[T]) Domain() Domain[T] {
	return NewInterval(b.lower, b.upper)
}
