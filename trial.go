package layout

import (
	"github.com/teleivo/layout/internal/assert"
)

// TryCompact attempts shortForm under a width budget measured from the current
// column and falls back to longForm if it overflows. See [Context.TryCompactFrom].
func (c *Context) TryCompact(maxWidth int, shortForm, longForm Step) *Context {
	return c.TryCompactFrom(maxWidth, c.acc.column, shortForm, longForm)
}

// TryCompactFrom is the single mechanism underlying every "does this fit on
// one line" decision. It bets that shortForm fits within maxWidth columns
// measured from startColumn and within the page width, checked at every
// emitted event, not only at the end: a nested break invalidates the bet
// mid-stream. On a lost bet the speculative rendering is discarded entirely
// and longForm runs against the original, pre-trial context instead. On a won
// bet the rendering is committed and the trial stack pops back to the caller's
// mode.
//
// When an enclosing trial has already failed, or already exceeds its bound at
// the current column, the context is returned unchanged so the failure
// propagates outward without doing extra work.
//
// Both forms must be pure apart from the context they are handed: shortForm's
// output may be discarded wholesale and nothing of it survives into the
// longForm rendering.
func (c *Context) TryCompactFrom(maxWidth, startColumn int, shortForm, longForm Step) *Context {
	if c.acc.doomed() || c.acc.overBudget(c.cfg.PageWidth) {
		return c
	}

	trial := c.fork()
	trial.acc.trials = append(trial.acc.trials, budget{maxWidth: maxWidth, startColumn: startColumn})

	result := shortForm(trial)

	if result.acc.doomed() || result.acc.overBudget(result.cfg.PageWidth) {
		return longForm(c)
	}

	assert.That(len(result.acc.trials) == len(c.acc.trials)+1,
		"trial stack has %d budgets after shortForm, want %d",
		len(result.acc.trials), len(c.acc.trials)+1)
	result.acc.trials = result.acc.trials[:len(result.acc.trials)-1]
	return result
}
