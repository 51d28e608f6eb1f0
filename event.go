package layout

import (
	"fmt"
	"strings"
)

// Event is one atomic layout instruction. Events are immutable once appended
// to a context's log and the log is append-only: it is never mutated or
// truncated, except that discarding a trial drops the trial's whole context,
// log included, as a unit.
type Event interface {
	event()
	fmt.Stringer
}

// WriteText appends text to the current line.
type WriteText struct {
	Text string
}

// BreakLine ends the current line and opens a new one at the current indent,
// respecting the alignment floor.
type BreakLine struct{}

// LiteralBreak breaks the line inside a multi-line textual literal. The
// just-finished line is preserved exactly as authored, without trimming, and
// the new line starts at column zero.
type LiteralBreak struct{}

// TriviaBreak breaks the line inside trivia that itself spans lines. The
// just-finished line is right-trimmed and the new line starts at column zero.
type TriviaBreak struct{}

// ForcedBreak is semantically a BreakLine but tagged separately so later
// analysis can distinguish breaks forced by trivia from breaks the content
// itself produced.
type ForcedBreak struct{}

// DeferUntilBreak holds text and appends it to the current line only once a
// break actually occurs, or at document end. Used for trailing same-line
// comments. A later DeferUntilBreak overwrites an unflushed one.
type DeferUntilBreak struct {
	Text string
}

// IndentBy increases the indent by the given number of columns. An alignment
// floor strictly deeper than the requested indent wins: the new indent is then
// measured from the floor instead.
type IndentBy struct {
	Columns int
}

// UnindentBy decreases the indent by the given number of columns, never below
// the alignment floor.
type UnindentBy struct {
	Columns int
}

// SetIndent assigns the indent directly. Used in save/restore pairs around
// absolute-column formatting.
type SetIndent struct {
	Columns int
}

// RestoreIndent assigns the indent directly, closing a SetIndent scope.
type RestoreIndent struct {
	Columns int
}

// SetAlign assigns the alignment floor directly.
type SetAlign struct {
	Columns int
}

// RestoreAlign assigns the alignment floor directly, closing a SetAlign scope.
type RestoreAlign struct {
	Columns int
}

func (e WriteText) event()       {}
func (e BreakLine) event()       {}
func (e LiteralBreak) event()    {}
func (e TriviaBreak) event()     {}
func (e ForcedBreak) event()     {}
func (e DeferUntilBreak) event() {}
func (e IndentBy) event()        {}
func (e UnindentBy) event()      {}
func (e SetIndent) event()       {}
func (e RestoreIndent) event()   {}
func (e SetAlign) event()        {}
func (e RestoreAlign) event()    {}

func (e WriteText) String() string {
	return fmt.Sprintf("WriteText(%q)", e.Text)
}

func (e BreakLine) String() string {
	return "BreakLine"
}

func (e LiteralBreak) String() string {
	return "LiteralBreak"
}

func (e TriviaBreak) String() string {
	return "TriviaBreak"
}

func (e ForcedBreak) String() string {
	return "ForcedBreak"
}

func (e DeferUntilBreak) String() string {
	return fmt.Sprintf("DeferUntilBreak(%q)", e.Text)
}

func (e IndentBy) String() string {
	return fmt.Sprintf("IndentBy(%d)", e.Columns)
}

func (e UnindentBy) String() string {
	return fmt.Sprintf("UnindentBy(%d)", e.Columns)
}

func (e SetIndent) String() string {
	return fmt.Sprintf("SetIndent(%d)", e.Columns)
}

func (e RestoreIndent) String() string {
	return fmt.Sprintf("RestoreIndent(%d)", e.Columns)
}

func (e SetAlign) String() string {
	return fmt.Sprintf("SetAlign(%d)", e.Columns)
}

func (e RestoreAlign) String() string {
	return fmt.Sprintf("RestoreAlign(%d)", e.Columns)
}

// isBreak reports whether the event ends the current line.
func isBreak(ev Event) bool {
	switch ev.(type) {
	case BreakLine, LiteralBreak, TriviaBreak, ForcedBreak:
		return true
	}
	return false
}

// normalize splits a WriteText containing embedded newlines into alternating
// text and break events, having first removed carriage returns. Text that
// looks like a comment or preprocessor directive breaks with TriviaBreak so
// finished lines are right-trimmed; anything else is treated as a multi-line
// literal whose lines are preserved exactly as authored. Every other event
// normalizes to itself, singleton.
func normalize(ev Event) []Event {
	w, ok := ev.(WriteText)
	if !ok || !strings.Contains(w.Text, "\n") {
		return []Event{ev}
	}

	var brk Event = LiteralBreak{}
	if looksLikeTrivia(w.Text) {
		brk = TriviaBreak{}
	}

	parts := strings.Split(strings.ReplaceAll(w.Text, "\r", ""), "\n")
	events := make([]Event, 0, 2*len(parts)-1)
	for i, part := range parts {
		if i > 0 {
			events = append(events, brk)
		}
		events = append(events, WriteText{Text: part})
	}
	return events
}

// looksLikeTrivia reports whether text starts with a recognized comment or
// preprocessor directive marker. The marker set targets C-family surfaces;
// retarget a different host language here.
func looksLikeTrivia(text string) bool {
	trimmed := strings.TrimLeft(text, " \t")
	for _, marker := range [...]string{"//", "/*", "*", "#"} {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}
