package domain

import (
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/constraints"
)

// Domain is a set of reals in canonical form. Any domain is one of three
// variants: the empty set, a single contiguous interval, or a union of two or
// more disjoint, non-adjacent intervals sorted by lower bound.
//
// Domains are immutable values; every operation returns a fresh, normalized
// domain. Construction is total: degenerate inputs collapse to Empty rather
// than failing.
type Domain[T constraints.Ordered] interface {
	// Repr renders the canonical mathematical notation of the domain,
	// without coloring.
	Repr() string

	// String renders the domain for human consumption. Unlike Repr, the
	// output may be colorized.
	String() string

	// IsEmpty reports whether the domain is the empty set.
	IsEmpty() bool

	// Contains reports whether v is a member of the set.
	Contains(v T) bool

	// Eq computes d1 = d2 on canonical forms.
	Eq(Domain[T]) bool

	// Leq computes d1 ⊆ d2.
	Leq(Domain[T]) bool

	// Join computes the normalized union d1 ∪ d2.
	Join(Domain[T]) Domain[T]

	// Intersect computes the normalized intersection d1 ∩ d2.
	Intersect(Domain[T]) Domain[T]

	// intervals yields the canonical member intervals in ascending order.
	// Empty domains have none; an interval is its own single member.
	intervals() []Interval[T]
}

type (
	// Empty is the empty set, ∅.
	Empty[T constraints.Ordered] struct{}

	// Interval is a contiguous range of reals between a lower and an upper
	// endpoint. Intervals are only constructed in valid form: the lower
	// endpoint precedes the upper, and equal endpoints are both inclusive.
	Interval[T constraints.Ordered] struct {
		lower, upper Value[T]
	}

	// Union is a set of two or more disjoint, non-adjacent intervals in
	// ascending order. Unions never nest and never hold empty members.
	Union[T constraints.Ordered] struct {
		members *immutable.List[Interval[T]]
	}
)

// NewEmpty creates the empty domain.
func NewEmpty[T constraints.Ordered]() Domain[T] {
	return Empty[T]{}
}

// NewInterval creates the domain of reals between lower and upper. Inverted
// bounds, or equal bounds of which at least one is exclusive, denote a set
// with no members and collapse to the empty domain. Equal inclusive bounds
// denote a single-point set.
func NewInterval[T constraints.Ordered](lower, upper Value[T]) Domain[T] {
	if !validInterval(lower, upper) {
		return Empty[T]{}
	}
	return Interval[T]{lower: lower, upper: upper}
}

// NewUnion creates the normalized union of an arbitrary sequence of domains.
// Members may overlap, touch or be empty; the result is in canonical form.
// An empty sequence yields the empty domain.
func NewUnion[T constraints.Ordered](domains ...Domain[T]) Domain[T] {
	var raw []Interval[T]
	for _, d := range domains {
		raw = append(raw, d.intervals()...)
	}
	return canonicalize(raw)
}

// Full creates the unbounded domain (-∞;∞).
func Full[T constraints.Ordered]() Domain[T] {
	return Interval[T]{lower: Infinite[T]{}, upper: Infinite[T]{}}
}

// IsEmpty is true for the empty set.
func (Empty[T]) IsEmpty() bool {
	return true
}

// Contains is false for every v; the empty set has no members.
func (Empty[T]) Contains(v T) bool {
	return false
}

// Eq computes d1 = d2.
func (Empty[T]) Eq(other Domain[T]) bool {
	switch other.(type) {
	case Empty[T]:
		return true
	}
	return false
}

// Leq computes d1 ⊆ d2. The empty set is a subset of every domain.
func (Empty[T]) Leq(Domain[T]) bool {
	return true
}

// Join computes d1 ∪ d2. The empty set is the identity of union.
func (Empty[T]) Join(other Domain[T]) Domain[T] {
	return NewUnion[T](other)
}

// Intersect computes d1 ∩ d2. The empty set absorbs intersection.
func (e Empty[T]) Intersect(Domain[T]) Domain[T] {
	return e
}

func (Empty[T]) intervals() []Interval[T] {
	return nil
}

// Lower yields the lower endpoint of the interval.
func (i Interval[T]) Lower() Value[T] {
	return i.lower
}

// Upper yields the upper endpoint of the interval.
func (i Interval[T]) Upper() Value[T] {
	return i.upper
}

// IsEmpty is false for any constructed interval.
func (Interval[T]) IsEmpty() bool {
	return false
}

// Contains reports whether v lies between the interval endpoints.
func (i Interval[T]) Contains(v T) bool {
	return admitsLower(i.lower, v) && admitsUpper(i.upper, v)
}

// Eq computes d1 = d2.
func (i Interval[T]) Eq(other Domain[T]) bool {
	switch other := other.(type) {
	case Interval[T]:
		return i.lower.Eq(other.lower) && i.upper.Eq(other.upper)
	}
	return false
}

// Leq computes d1 ⊆ d2.
func (i Interval[T]) Leq(other Domain[T]) bool {
	return subset(i.intervals(), other.intervals())
}

// Join computes the normalized union d1 ∪ d2.
func (i Interval[T]) Join(other Domain[T]) Domain[T] {
	return NewUnion[T](i, other)
}

// Intersect computes the normalized intersection d1 ∩ d2.
func (i Interval[T]) Intersect(other Domain[T]) Domain[T] {
	return intersect(i.intervals(), other.intervals())
}

func (i Interval[T]) intervals() []Interval[T] {
	return []Interval[T]{i}
}

// Members yields the member intervals of the union in ascending order.
func (u Union[T]) Members() []Interval[T] {
	members := make([]Interval[T], 0, u.members.Len())
	itr := u.members.Iterator()
	for !itr.Done() {
		_, iv := itr.Next()
		members = append(members, iv)
	}
	return members
}

// IsEmpty is false for any union; empty branches are dropped during
// normalization and a union holds at least two intervals.
func (Union[T]) IsEmpty() bool {
	return false
}

// Contains reports whether v is a member of any interval of the union.
func (u Union[T]) Contains(v T) bool {
	itr := u.members.Iterator()
	for !itr.Done() {
		_, iv := itr.Next()
		if iv.Contains(v) {
			return true
		}
		// Members are sorted, so once v precedes a lower endpoint no
		// later member can contain it.
		if !admitsLower(iv.lower, v) {
			return false
		}
	}
	return false
}

// Eq computes d1 = d2.
func (u Union[T]) Eq(other Domain[T]) bool {
	switch other := other.(type) {
	case Union[T]:
		if u.members.Len() != other.members.Len() {
			return false
		}
		itr1, itr2 := u.members.Iterator(), other.members.Iterator()
		for !itr1.Done() {
			_, iv1 := itr1.Next()
			_, iv2 := itr2.Next()
			if !iv1.Eq(iv2) {
				return false
			}
		}
		return true
	}
	return false
}

// Leq computes d1 ⊆ d2.
func (u Union[T]) Leq(other Domain[T]) bool {
	return subset(u.intervals(), other.intervals())
}

// Join computes the normalized union d1 ∪ d2.
func (u Union[T]) Join(other Domain[T]) Domain[T] {
	return NewUnion[T](u, other)
}

// Intersect computes the normalized intersection d1 ∩ d2.
func (u Union[T]) Intersect(other Domain[T]) Domain[T] {
	return intersect(u.intervals(), other.intervals())
}

func (u Union[T]) intervals() []Interval[T] {
	return u.Members()
}
