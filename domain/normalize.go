package domain

import (
	"sort"

	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/constraints"
)

// validInterval reports whether lower and upper delimit a set with at least
// one member. Equal finite bounds require inclusivity on both sides; any
// unbounded side admits the whole half-line.
func validInterval[T constraints.Ordered](lower, upper Value[T]) bool {
	lv, linc, lok := finite(lower)
	uv, uinc, uok := finite(upper)
	if !lok || !uok {
		return true
	}
	switch {
	case lv < uv:
		return true
	case lv > uv:
		return false
	}
	return linc && uinc
}

// canonicalize sorts, merges and collapses a raw interval collection into the
// canonical minimal form: zero surviving intervals collapse to Empty, one to
// a bare Interval, several to a Union of disjoint, non-adjacent intervals in
// ascending order. O(n log n), dominated by the sort.
func canonicalize[T constraints.Ordered](raw []Interval[T]) Domain[T] {
	// Construction already rejects degenerate intervals; revalidate in case
	// a zero-value Interval slipped in through the package itself.
	ivs := make([]Interval[T], 0, len(raw))
	for _, iv := range raw {
		if validInterval(iv.lower, iv.upper) {
			ivs = append(ivs, iv)
		}
	}

	sort.SliceStable(ivs, func(i, j int) bool {
		if c := compareLower(ivs[i].lower, ivs[j].lower); c != 0 {
			return c < 0
		}
		return compareUpper(ivs[i].upper, ivs[j].upper) < 0
	})

	// Left-to-right sweep. Two intervals merge when they overlap or touch
	// with at least one inclusive side; a shared exclusive boundary value
	// leaves a single-point gap and keeps them apart.
	var out []Interval[T]
	for _, iv := range ivs {
		if len(out) == 0 {
			out = append(out, iv)
			continue
		}
		last := &out[len(out)-1]
		if gapBetween(last.upper, iv.lower) {
			out = append(out, iv)
			continue
		}
		if compareUpper(iv.upper, last.upper) > 0 {
			last.upper = iv.upper
		}
	}

	switch len(out) {
	case 0:
		return Empty[T]{}
	case 1:
		return out[0]
	}

	b := immutable.NewListBuilder[Interval[T]]()
	for _, iv := range out {
		b.Append(iv)
	}
	return Union[T]{members: b.List()}
}

// covers reports whether the outer interval fully contains the inner one.
func covers[T constraints.Ordered](outer, inner Interval[T]) bool {
	return compareLower(outer.lower, inner.lower) <= 0 &&
		compareUpper(outer.upper, inner.upper) >= 0
}

// subset reports whether every inner interval is covered by some outer
// interval. Both slices are canonical: sorted, disjoint and non-adjacent,
// so the only outer candidate for an inner member is the first one ending at
// or beyond it.
func subset[T constraints.Ordered](inner, outer []Interval[T]) bool {
	j := 0
	for _, in := range inner {
		for j < len(outer) && compareUpper(outer[j].upper, in.upper) < 0 {
			j++
		}
		if j == len(outer) || !covers(outer[j], in) {
			return false
		}
	}
	return true
}

// intersectIntervals computes the overlap of two intervals, taking the
// tighter of the lower endpoints and the tighter of the upper endpoints.
// ok is false when the overlap has no members.
func intersectIntervals[T constraints.Ordered](a, b Interval[T]) (Interval[T], bool) {
	lower := a.lower
	if compareLower(b.lower, lower) > 0 {
		lower = b.lower
	}
	upper := a.upper
	if compareUpper(b.upper, upper) < 0 {
		upper = b.upper
	}
	if !validInterval(lower, upper) {
		return Interval[T]{}, false
	}
	return Interval[T]{lower: lower, upper: upper}, true
}

// intersect computes the normalized intersection of two canonical interval
// collections as the pairwise overlap of their members.
func intersect[T constraints.Ordered](a, b []Interval[T]) Domain[T] {
	var raw []Interval[T]
	for _, x := range a {
		for _, y := range b {
			if iv, ok := intersectIntervals(x, y); ok {
				raw = append(raw, iv)
			}
		}
	}
	return canonicalize(raw)
}
