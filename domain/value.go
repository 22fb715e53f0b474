package domain

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Value is an interval endpoint. Any endpoint is either a finite bound that
// includes or excludes its boundary value, or the unbounded sentinel.
//
// Whether the unbounded sentinel reads as -∞ or ∞ depends on which side of an
// interval it occupies; an unbounded endpoint is never inclusive, as infinity
// cannot be a member of a set of reals.
//
// The boundary type must be totally ordered. Values without a total order,
// such as floating point NaN, must be rejected before they reach the algebra.
type Value[T constraints.Ordered] interface {
	fmt.Stringer

	// IsInfinite reports whether the endpoint is the unbounded sentinel.
	IsInfinite() bool

	// Eq checks for endpoint equality. Two finite endpoints are equal when
	// they carry the same boundary value with the same inclusivity.
	Eq(Value[T]) bool
}

type (
	// Included is a finite endpoint whose boundary value belongs to the
	// interval, i.e. ≤/≥ semantics.
	Included[T constraints.Ordered] struct{ V T }
	// Secluded is a finite endpoint whose boundary value is excluded from
	// the interval, i.e. strict </> semantics.
	Secluded[T constraints.Ordered] struct{ V T }
	// Infinite is the unbounded endpoint sentinel.
	Infinite[T constraints.Ordered] struct{}
)

// IsInfinite is false for an inclusive finite endpoint.
func (Included[T]) IsInfinite() bool {
	return false
}

func (v Included[T]) String() string {
	return colorize.Element(fmt.Sprint(v.V))
}

// Eq computes v1 = v2.
func (v1 Included[T]) Eq(v2 Value[T]) bool {
	switch v2 := v2.(type) {
	case Included[T]:
		return v1.V == v2.V
	}
	return false
}

// IsInfinite is false for an exclusive finite endpoint.
func (Secluded[T]) IsInfinite() bool {
	return false
}

func (v Secluded[T]) String() string {
	return colorize.Element(fmt.Sprint(v.V))
}

// Eq computes v1 = v2.
func (v1 Secluded[T]) Eq(v2 Value[T]) bool {
	switch v2 := v2.(type) {
	case Secluded[T]:
		return v1.V == v2.V
	}
	return false
}

// IsInfinite is true for the unbounded sentinel.
func (Infinite[T]) IsInfinite() bool {
	return true
}

func (Infinite[T]) String() string {
	return colorize.Element(infinitySymbol)
}

// Eq computes v1 = v2. All unbounded endpoints are equal.
func (Infinite[T]) Eq(v2 Value[T]) bool {
	switch v2.(type) {
	case Infinite[T]:
		return true
	}
	return false
}

// finite unpacks a finite endpoint into its boundary value and inclusivity.
// ok is false for the unbounded sentinel.
func finite[T constraints.Ordered](v Value[T]) (val T, inclusive bool, ok bool) {
	switch v := v.(type) {
	case Included[T]:
		return v.V, true, true
	case Secluded[T]:
		return v.V, false, true
	case Infinite[T]:
		var zero T
		return zero, false, false
	}
	panic(errPatternMatch(v))
}

// compareLower orders endpoints by how far to the left an interval starts.
// The unbounded sentinel (-∞) sorts first; at an equal boundary value an
// inclusive endpoint starts further left than an exclusive one, as [x covers
// the point x while (x does not.
func compareLower[T constraints.Ordered](a, b Value[T]) int {
	av, ainc, aok := finite(a)
	bv, binc, bok := finite(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	case av < bv:
		return -1
	case av > bv:
		return 1
	case ainc == binc:
		return 0
	case ainc:
		return -1
	}
	return 1
}

// compareUpper orders endpoints by how far to the right an interval ends.
// The unbounded sentinel (∞) sorts last; at an equal boundary value an
// inclusive endpoint ends further right than an exclusive one.
func compareUpper[T constraints.Ordered](a, b Value[T]) int {
	av, ainc, aok := finite(a)
	bv, binc, bok := finite(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	case av < bv:
		return -1
	case av > bv:
		return 1
	case ainc == binc:
		return 0
	case ainc:
		return 1
	}
	return -1
}

// gapBetween reports whether an upper endpoint and a following lower endpoint
// leave at least one real number uncovered between them. Touching endpoints
// with equal boundary values leave a single-point gap only when both sides
// are exclusive.
func gapBetween[T constraints.Ordered](upper, lower Value[T]) bool {
	uv, uinc, uok := finite(upper)
	lv, linc, lok := finite(lower)
	if !uok || !lok {
		return false
	}
	switch {
	case uv < lv:
		return true
	case uv > lv:
		return false
	}
	return !uinc && !linc
}

// admitsLower reports whether v lies on the admissible side of a lower endpoint.
func admitsLower[T constraints.Ordered](bound Value[T], v T) bool {
	switch b := bound.(type) {
	case Included[T]:
		return v >= b.V
	case Secluded[T]:
		return v > b.V
	case Infinite[T]:
		return true
	}
	panic(errPatternMatch(bound))
}

// admitsUpper reports whether v lies on the admissible side of an upper endpoint.
func admitsUpper[T constraints.Ordered](bound Value[T], v T) bool {
	switch b := bound.(type) {
	case Included[T]:
		return v <= b.V
	case Secluded[T]:
		return v < b.V
	case Infinite[T]:
		return true
	}
	panic(errPatternMatch(bound))
}
