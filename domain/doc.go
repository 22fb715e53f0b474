// Package domain implements an algebra of one-dimensional real-number
// domains: possibly unbounded, possibly open or closed intervals, and unions
// thereof.
//
// Every constructor returns the canonical minimal form, in which unions hold
// only disjoint, non-adjacent intervals sorted by lower bound, a union of one
// interval is that interval, and memberless sets are the empty domain. All
// operations are pure and total; domains are immutable values that may be
// shared freely.
//
// Repr renders a domain in mathematical interval notation, e.g. "[5;10)",
// "(-∞;5)⋃[8;100]" or "∅".
package domain
