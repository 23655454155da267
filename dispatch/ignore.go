package dispatch

import (
	"slices"
	"strings"
)

// IgnoreList vetoes records by source tag.
//
// A source is ignored if it contains any of the list's patterns as a
// substring. The zero value ignores nothing. An IgnoreList is immutable.
type IgnoreList struct {
	patterns []string
}

// NewIgnoreList returns a list of the given patterns in order.
// The patterns are copied.
func NewIgnoreList(patterns ...string) IgnoreList {
	if len(patterns) == 0 {
		return IgnoreList{}
	}

	return IgnoreList{patterns: slices.Clone(patterns)}
}

// Ignore reports whether source contains any pattern.
func (l IgnoreList) Ignore(source string) bool {
	for _, p := range l.patterns {
		if strings.Contains(source, p) {
			return true
		}
	}

	return false
}

// Len returns the number of patterns.
func (l IgnoreList) Len() int { return len(l.patterns) }

// Patterns returns a copy of the patterns in order.
func (l IgnoreList) Patterns() []string { return slices.Clone(l.patterns) }
