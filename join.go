package layout

import (
	"strings"
)

// Item is one element of a joined list: its separator, run before the item's
// own content on every item but the first, and its rendering.
type Item struct {
	Separator Step
	Render    Step
}

// Join renders items in order, separating an item from a multiline neighbor
// with a blank line: around a multiline item readers want breathing room,
// between single-line items they do not. Whether an item is multiline is
// detected from the events its rendering appended to the log. When an item and
// its preceding neighbor both turn out single-line, the speculatively emitted
// blank line is taken back by replaying the item against the checkpoint
// before it — render functions therefore must be pure and cheap to re-run.
//
// The first item is never preceded by a blank line. When blank-line separation
// is disabled in the configuration, items are joined with their plain
// separators only.
func Join(items ...Item) Step {
	return func(c *Context) *Context {
		if len(items) == 0 {
			return c
		}

		if !c.cfg.BlankAroundMultiline {
			for i, item := range items {
				if i > 0 && item.Separator != nil {
					c = item.Separator(c)
				}
				c = item.Render(c)
				if c.Overflowed() {
					break
				}
			}
			return c
		}

		start := len(c.log)
		c = items[0].Render(c)
		lastMultiline := multilineSince(c.log, start)

		for _, item := range items[1:] {
			if c.Overflowed() {
				return c
			}

			checkpoint := c.fork()
			addedBlank := false
			if !c.trailingBlank() {
				c = c.Emit(BreakLine{})
				addedBlank = true
			}

			start := len(c.log)
			c = runItem(c, item)
			multiline := multilineSince(c.log, start)

			if addedBlank && !multiline && !lastMultiline {
				// neither neighbor is multiline, so the blank line is unwanted:
				// replay the item against the checkpoint without it
				c = runItem(checkpoint, item)
			}
			lastMultiline = multiline
		}
		return c
	}
}

func runItem(c *Context, item Item) *Context {
	if item.Separator != nil {
		c = item.Separator(c)
	}
	return item.Render(c)
}

// trailingBlank reports whether the document already ends in a blank line, in
// which case no extra one is emitted before a separator's break.
func (c *Context) trailingBlank() bool {
	if len(c.acc.lines) < 2 {
		return false
	}
	return strings.TrimSpace(c.acc.lines[len(c.acc.lines)-1]) == ""
}

// multilineSince reports whether the events logged from start onward contain a
// break beyond the first event, skipping a leading trivia-only prefix. The
// first non-trivia event is the break that opens the item's own line and does
// not count against it.
func multilineSince(log []Event, start int) bool {
	events := log[start:]
	i := 0
	for i < len(events) && isTriviaPrefix(events[i]) {
		i++
	}
	i++
	for ; i < len(events); i++ {
		if isBreak(events[i]) {
			return true
		}
	}
	return false
}

// isTriviaPrefix reports whether the event can belong to leading trivia:
// trivia-attributed breaks, deferred trailing comments, and comment or
// directive text.
func isTriviaPrefix(ev Event) bool {
	switch ev := ev.(type) {
	case TriviaBreak, ForcedBreak, DeferUntilBreak:
		return true
	case WriteText:
		return looksLikeTrivia(ev.Text)
	}
	return false
}
