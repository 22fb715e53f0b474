package domain

import (
	"fmt"
	"strings"
)

// Repr yields ∅.
func (Empty[T]) Repr() string {
	return emptySymbol
}

func (e Empty[T]) String() string {
	return colorize.Symbol(emptySymbol)
}

// Repr renders the interval in mathematical notation: an inclusive finite
// endpoint pairs with a bracket, an exclusive one with a parenthesis, and an
// unbounded side renders as an always-open infinity, e.g. [5;10) or (-∞;5).
func (i Interval[T]) Repr() string {
	var sb strings.Builder
	switch l := i.lower.(type) {
	case Included[T]:
		sb.WriteString("[")
		sb.WriteString(fmt.Sprint(l.V))
	case Secluded[T]:
		sb.WriteString("(")
		sb.WriteString(fmt.Sprint(l.V))
	case Infinite[T]:
		sb.WriteString("(-")
		sb.WriteString(infinitySymbol)
	default:
		panic(errPatternMatch(i.lower))
	}
	sb.WriteString(";")
	switch u := i.upper.(type) {
	case Included[T]:
		sb.WriteString(fmt.Sprint(u.V))
		sb.WriteString("]")
	case Secluded[T]:
		sb.WriteString(fmt.Sprint(u.V))
		sb.WriteString(")")
	case Infinite[T]:
		sb.WriteString(infinitySymbol)
		sb.WriteString(")")
	default:
		panic(errPatternMatch(i.upper))
	}
	return sb.String()
}

func (i Interval[T]) String() string {
	var sb strings.Builder
	switch i.lower.(type) {
	case Included[T]:
		sb.WriteString("[")
		sb.WriteString(i.lower.String())
	case Secluded[T]:
		sb.WriteString("(")
		sb.WriteString(i.lower.String())
	case Infinite[T]:
		sb.WriteString("(")
		sb.WriteString(colorize.Element("-" + infinitySymbol))
	}
	sb.WriteString(";")
	switch i.upper.(type) {
	case Included[T]:
		sb.WriteString(i.upper.String())
		sb.WriteString("]")
	case Secluded[T]:
		sb.WriteString(i.upper.String())
		sb.WriteString(")")
	case Infinite[T]:
		sb.WriteString(i.upper.String())
		sb.WriteString(")")
	}
	return sb.String()
}

// Repr renders each member interval in ascending order, joined by ⋃. The
// order is guaranteed by the normalization invariant, so no sorting happens
// here.
func (u Union[T]) Repr() string {
	parts := make([]string, 0, u.members.Len())
	itr := u.members.Iterator()
	for !itr.Done() {
		_, iv := itr.Next()
		parts = append(parts, iv.Repr())
	}
	return strings.Join(parts, unionSymbol)
}

func (u Union[T]) String() string {
	parts := make([]string, 0, u.members.Len())
	itr := u.members.Iterator()
	for !itr.Done() {
		_, iv := itr.Next()
		parts = append(parts, iv.String())
	}
	return strings.Join(parts, colorize.Symbol(unionSymbol))
}
