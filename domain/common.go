package domain

import (
	"fmt"

	"github.com/dynalg/dyndomain/utils"

	"github.com/fatih/color"
)

const (
	// emptySymbol denotes the empty set, ∅.
	emptySymbol = "∅"
	// unionSymbol joins member intervals of a union, ⋃.
	unionSymbol = "⋃"
	// infinitySymbol denotes an unbounded endpoint, ∞.
	infinitySymbol = "∞"
)

var colorize = struct {
	Element func(...interface{}) string
	Symbol  func(...interface{}) string
}{
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Symbol: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
}

var errPatternMatch = func(v interface{}) error {
	return fmt.Errorf("invalid pattern match: %v %T", v, v)
}
