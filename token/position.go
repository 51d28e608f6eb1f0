// Package token provides positions and ranges in the original source text.
// They key the lookup of trivia (comments, directives, blank lines) that a
// trivia collector attaches to syntax-tree nodes.
package token

import (
	"strconv"
)

// Position describes a position in the original source code.
type Position struct {
	Row    int // Row is the line number starting at 1. A row of zero is not valid.
	Column int // Column is the horizontal position in terms of runes starting at 1. A column of zero is not valid.
}

// String returns the position in line:column format.
func (p Position) String() string {
	return strconv.Itoa(p.Row) + ":" + strconv.Itoa(p.Column)
}

// Before reports whether the position p is before o.
func (p Position) Before(o Position) bool {
	if p.Row < o.Row {
		return true
	} else if p.Row == o.Row && p.Column < o.Column {
		return true
	}
	return false
}

// After reports whether the position p is after o.
func (p Position) After(o Position) bool {
	if p.Row > o.Row {
		return true
	} else if p.Row == o.Row && p.Column > o.Column {
		return true
	}
	return false
}

// Range describes the span a syntax-tree node covers in the original source.
// Trivia lookups match on exact ranges.
type Range struct {
	Start Position
	End   Position
}

// String returns the range in start-end format.
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Contains reports whether the range r contains the position p.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && !p.After(r.End)
}
