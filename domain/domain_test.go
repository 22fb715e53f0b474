package domain

import "testing"

func TestNewIntervalCollapse(t *testing.T) {
	tests := []struct {
		lower, upper Value[int]
		empty        bool
	}{
		{inc(1), inc(5), false},
		{inf(), inf(), false},
		{inf(), exc(5), false},
		{inc(8), inf(), false},
		// Single-point set.
		{inc(3), inc(3), false},
		// Equal bounds with any exclusivity denote no members.
		{exc(3), exc(3), true},
		{inc(3), exc(3), true},
		{exc(3), inc(3), true},
		// Inverted bounds.
		{inc(5), inc(1), true},
		{exc(5), exc(1), true},
	}

	for _, test := range tests {
		d := NewInterval(test.lower, test.upper)
		if d.IsEmpty() != test.empty {
			t.Errorf("NewInterval(%s, %s) = %s, expected empty = %v",
				test.lower, test.upper, d.Repr(), test.empty)
		}
	}
}

func TestContains(t *testing.T) {
	union := NewUnion(ival(inf(), exc(5)), ival(inc(8), inc(100)))

	tests := []struct {
		domain   Domain[int]
		v        int
		expected bool
	}{
		{NewEmpty[int](), 0, false},
		{Full[int](), -1000, true},
		{ival(inc(1), inc(5)), 1, true},
		{ival(inc(1), inc(5)), 5, true},
		{ival(exc(1), exc(5)), 1, false},
		{ival(exc(1), exc(5)), 5, false},
		{ival(exc(1), exc(5)), 3, true},
		{ival(inc(3), inc(3)), 3, true},
		{ival(inf(), exc(5)), -42, true},
		{ival(inf(), exc(5)), 5, false},
		{union, 4, true},
		{union, 5, false},
		{union, 7, false},
		{union, 8, true},
		{union, 100, true},
		{union, 101, false},
	}

	for _, test := range tests {
		if res := test.domain.Contains(test.v); res != test.expected {
			t.Errorf("%s.Contains(%d) = %v, expected %v",
				test.domain.Repr(), test.v, res, test.expected)
		}
	}
}

func TestEq(t *testing.T) {
	tests := []struct {
		a, b     Domain[int]
		expected bool
	}{
		{NewEmpty[int](), NewEmpty[int](), true},
		{NewEmpty[int](), ival(inc(1), inc(5)), false},
		{ival(inc(1), inc(5)), ival(inc(1), inc(5)), true},
		{ival(inc(1), inc(5)), ival(exc(1), inc(5)), false},
		{ival(inc(1), inc(5)), ival(inc(1), exc(5)), false},
		{
			NewUnion(ival(inc(1), inc(2)), ival(inc(4), inc(5))),
			NewUnion(ival(inc(4), inc(5)), ival(inc(1), inc(2))),
			true,
		},
		{
			NewUnion(ival(inc(1), inc(2)), ival(inc(4), inc(5))),
			ival(inc(1), inc(5)),
			false,
		},
		// Degenerate intervals collapse and compare equal to ∅.
		{ival(exc(3), exc(3)), NewEmpty[int](), true},
	}

	for _, test := range tests {
		if res := test.a.Eq(test.b); res != test.expected {
			t.Errorf("%s = %s is %v, expected %v",
				test.a.Repr(), test.b.Repr(), res, test.expected)
		}
		if rev := test.b.Eq(test.a); rev != test.expected {
			t.Errorf("%s = %s is %v, expected %v",
				test.b.Repr(), test.a.Repr(), rev, test.expected)
		}
	}
}

func TestLeq(t *testing.T) {
	union := NewUnion(ival(inc(1), inc(2)), ival(inc(4), inc(5)))

	tests := []struct {
		a, b     Domain[int]
		expected bool
	}{
		{NewEmpty[int](), NewEmpty[int](), true},
		{NewEmpty[int](), ival(inc(1), inc(5)), true},
		{ival(inc(1), inc(5)), NewEmpty[int](), false},
		{ival(inc(1), inc(5)), Full[int](), true},
		{Full[int](), ival(inc(1), inc(5)), false},
		{ival(inc(2), inc(4)), ival(inc(1), inc(5)), true},
		{ival(inc(1), inc(5)), ival(inc(2), inc(4)), false},
		{ival(exc(1), exc(5)), ival(inc(1), inc(5)), true},
		{ival(inc(1), inc(5)), ival(exc(1), exc(5)), false},
		{union, ival(inc(0), inc(10)), true},
		{ival(inc(1), inc(2)), union, true},
		{ival(inc(2), inc(4)), union, false},
		{union, union, true},
	}

	for _, test := range tests {
		if res := test.a.Leq(test.b); res != test.expected {
			t.Errorf("%s ⊆ %s is %v, expected %v",
				test.a.Repr(), test.b.Repr(), res, test.expected)
		}
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		a, b, expected Domain[int]
	}{
		{NewEmpty[int](), Full[int](), NewEmpty[int]()},
		{Full[int](), ival(inc(1), inc(5)), ival(inc(1), inc(5))},
		{ival(inc(1), inc(5)), ival(inc(3), inc(8)), ival(inc(3), inc(5))},
		{ival(inc(1), inc(5)), ival(exc(5), inc(8)), NewEmpty[int]()},
		{ival(inc(1), inc(5)), ival(inc(5), inc(8)), ival(inc(5), inc(5))},
		{ival(inc(1), exc(5)), ival(inc(5), inc(8)), NewEmpty[int]()},
		{ival(exc(1), exc(5)), ival(inc(1), inc(5)), ival(exc(1), exc(5))},
		{
			NewUnion(ival(inc(1), inc(4)), ival(inc(6), inc(9))),
			ival(inc(3), inc(7)),
			NewUnion(ival(inc(3), inc(4)), ival(inc(6), inc(7))),
		},
		{
			NewUnion(ival(inf(), exc(0)), ival(inc(10), inf())),
			NewUnion(ival(inc(-5), inc(-1)), ival(inc(20), inf())),
			NewUnion(ival(inc(-5), inc(-1)), ival(inc(20), inf())),
		},
	}

	for _, test := range tests {
		res := test.a.Intersect(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ∩ %s = %s, expected %s",
				test.a.Repr(), test.b.Repr(), res.Repr(), test.expected.Repr())
		}
		rev := test.b.Intersect(test.a)
		if !rev.Eq(test.expected) {
			t.Errorf("%s ∩ %s = %s, expected %s",
				test.b.Repr(), test.a.Repr(), rev.Repr(), test.expected.Repr())
		}
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		a, b, expected Domain[int]
	}{
		{NewEmpty[int](), NewEmpty[int](), NewEmpty[int]()},
		{NewEmpty[int](), ival(inc(1), inc(5)), ival(inc(1), inc(5))},
		{ival(inc(1), inc(5)), ival(inc(3), inc(8)), ival(inc(1), inc(8))},
		{ival(inc(1), inc(5)), ival(exc(5), exc(8)), ival(inc(1), exc(8))},
		{
			ival(exc(1), exc(5)), ival(exc(5), exc(8)),
			NewUnion(ival(exc(1), exc(5)), ival(exc(5), exc(8))),
		},
		{ival(inf(), inc(0)), ival(inc(0), inf()), Full[int]()},
	}

	for _, test := range tests {
		res := test.a.Join(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ∪ %s = %s, expected %s",
				test.a.Repr(), test.b.Repr(), res.Repr(), test.expected.Repr())
		}
	}
}
