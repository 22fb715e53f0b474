package utils

import (
	"fmt"
	"strings"
)

type options struct {
	noColorize bool
}

var opts = options{}

// NoColorize globally toggles ANSI coloring of pretty-printed values.
// Canonical representations are never colored, so this only affects
// the String methods.
func NoColorize(disable bool) {
	opts.noColorize = disable
}

// CanColorize wraps a color sprint function such that it degrades to
// plain formatting when coloring is disabled.
func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}
