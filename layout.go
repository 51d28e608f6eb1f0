// Package layout provides a speculative layout engine for building source-code
// pretty printers and formatters.
//
// A tree walker drives the engine by emitting a stream of layout instructions
// ([Event] values: write text, break the line, indent, align) into a [Context].
// The engine folds the stream into final text honoring a maximum page width.
// Its distinguishing feature is speculative rendering: [Context.TryCompact]
// attempts a compact single-line form under a width budget and falls back to an
// expanded multi-line form only if the compact form overflows or breaks a line.
// Trials nest; an inner overflow dooms every enclosing trial at once, and a
// doomed trial is discarded as a unit and replayed against the pristine prior
// state.
//
// Formatting steps compose through [Seq], which stops executing as soon as an
// enclosing trial has confirmed overflow, so doomed renderings are not extended
// further. Higher-level building blocks ([Bracketed], [Join], [Indented]) and
// configuration-driven separators ([Comma], [Colon], [Semicolon]) are built
// from the same primitives and carry no trial logic of their own.
//
// All functions passed into [Context.TryCompact], [Context.Measure], and
// [Join] must be pure with respect to everything but the Context they are
// given: the engine may run them more than once and may discard their output.
package layout

// Step is one formatting step: a function from a layout context to a layout
// context. Steps are the unit of composition for the whole engine. A Step must
// be pure apart from the Context it is handed, since the trial engine and the
// list joiner re-run steps against earlier contexts when a speculative
// rendering is discarded.
type Step func(*Context) *Context

// Seq composes steps into one. Execution stops early once a step leaves the
// context with a confirmed trial overflow: the remaining steps would only
// extend a rendering that is going to be discarded anyway.
func Seq(steps ...Step) Step {
	return func(c *Context) *Context {
		for _, step := range steps {
			c = step(c)
			if c.Overflowed() {
				break
			}
		}
		return c
	}
}

// Nop is a step that leaves the context unchanged.
func Nop() Step {
	return func(c *Context) *Context {
		return c
	}
}
