package layout

import (
	"slices"
	"strings"
)

// mode distinguishes normal rendering from side-effect-free measurement.
// Speculative trials are tracked separately as the stack of outstanding
// budgets: the accumulator is in trial mode whenever that stack is non-empty.
type mode int

const (
	modeNormal mode = iota
	modeMeasure
)

// budget is one outstanding bet that a sub-rendering fits within maxWidth
// columns measured from startColumn, and within the page width.
type budget struct {
	maxWidth    int
	startColumn int
	// overflowed is monotone: once the bet is confirmed lost it stays lost for
	// the budget's whole lifetime.
	overflowed bool
}

// accumulator folds events into a growing document.
//
// Invariant: column always equals the length of the currently-open line, which
// is the last element of lines.
type accumulator struct {
	lines   []string
	indent  int
	align   int // align is a floor: after the next break, indentation is max(indent, align)
	pending string
	column  int
	mode    mode
	trials  []budget
}

func newAccumulator() accumulator {
	return accumulator{lines: []string{""}}
}

// fork clones the accumulator so a speculative rendering can mutate freely and
// be discarded as a unit.
func (a *accumulator) fork() accumulator {
	f := *a
	f.lines = slices.Clone(a.lines)
	f.trials = slices.Clone(a.trials)
	return f
}

// doomed reports whether any outstanding budget has confirmed overflow.
func (a *accumulator) doomed() bool {
	for _, b := range a.trials {
		if b.overflowed {
			return true
		}
	}
	return false
}

// overBudget reports whether the current column already exceeds the width
// bound of any outstanding budget or the page width. Outside of trial mode
// there is no bound to exceed.
func (a *accumulator) overBudget(pageWidth int) bool {
	if len(a.trials) == 0 {
		return false
	}
	if a.column > pageWidth {
		return true
	}
	for _, b := range a.trials {
		if a.column-b.startColumn > b.maxWidth {
			return true
		}
	}
	return false
}

// apply folds one event into the accumulator. In trial mode every outstanding
// budget is re-checked first: an event that forces a break, or a column that
// already exceeds a budget's width or the page width, confirms overflow. Once
// any budget has overflowed the whole trial is doomed and events no longer
// touch the document, since the trial's context will be discarded wholesale.
func (a *accumulator) apply(cfg *Config, ev Event) {
	if len(a.trials) > 0 {
		if a.doomed() {
			return
		}

		forcesBreak := isBreak(ev)
		if !forcesBreak && a.pending != "" {
			if _, ok := ev.(WriteText); ok {
				forcesBreak = true
			}
		}
		for i := range a.trials {
			b := &a.trials[i]
			if forcesBreak || a.column-b.startColumn > b.maxWidth || a.column > cfg.PageWidth {
				b.overflowed = true
			}
		}
		if a.doomed() {
			return
		}
	}

	a.applyEvent(ev)
}

func (a *accumulator) applyEvent(ev Event) {
	switch ev := ev.(type) {
	case WriteText:
		a.lines[len(a.lines)-1] += ev.Text
		a.column += len(ev.Text)
	case BreakLine, ForcedBreak:
		a.breakLine()
	case LiteralBreak:
		a.lines = append(a.lines, "")
		a.column = 0
	case TriviaBreak:
		a.trimCurrent()
		a.lines = append(a.lines, "")
		a.column = 0
	case DeferUntilBreak:
		a.pending = ev.Text
	case IndentBy:
		if a.align >= a.indent+ev.Columns {
			a.indent = a.align + ev.Columns
		} else {
			a.indent += ev.Columns
		}
	case UnindentBy:
		a.indent = max(a.align, a.indent-ev.Columns)
	case SetIndent:
		a.indent = ev.Columns
	case RestoreIndent:
		a.indent = ev.Columns
	case SetAlign:
		a.align = ev.Columns
	case RestoreAlign:
		a.align = ev.Columns
	}
}

// breakLine finishes the current line and opens a new one. The alignment floor
// is folded into the indent, the pending suffix is flushed onto the finished
// line, and the finished line is right-trimmed.
func (a *accumulator) breakLine() {
	a.indent = max(a.indent, a.align)
	a.lines[len(a.lines)-1] += a.pending
	a.pending = ""
	a.trimCurrent()
	a.lines = append(a.lines, strings.Repeat(" ", a.indent))
	a.column = a.indent
}

func (a *accumulator) trimCurrent() {
	a.lines[len(a.lines)-1] = strings.TrimRight(a.lines[len(a.lines)-1], " \t")
}
