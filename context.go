package layout

import (
	"io"
	"math"
	"slices"
	"strings"

	"github.com/teleivo/layout/internal/assert"
	"github.com/teleivo/layout/token"
)

// Context is the per-document handle bundling accumulator state, the
// append-only event log, configuration, and the trivia lookup tables. Create
// one per formatted document (or per selected sub-range) and thread it through
// every formatting step. A Context must not be shared across concurrent
// formatting runs; independent documents with independent contexts are safe to
// format in parallel.
type Context struct {
	cfg          *Config
	acc          accumulator
	log          []Event
	triviaBefore map[string][]Trivia
	triviaAfter  map[string][]Trivia
	source       string
}

// New creates a context for one document. A nil config selects
// [DefaultConfig].
func New(cfg *Config) *Context {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Context{cfg: cfg, acc: newAccumulator()}
}

// WithTrivia attaches the lookup tables produced by a trivia collector. The
// tables map a node-type tag to the ordered trivia attached before and after
// nodes of that type, keyed further by exact source range on lookup.
func (c *Context) WithTrivia(before, after map[string][]Trivia) *Context {
	c.triviaBefore = before
	c.triviaAfter = after
	return c
}

// WithSource attaches the original source text for use by trivia rendering.
func (c *Context) WithSource(source string) *Context {
	c.source = source
	return c
}

// Config returns the options record layout decisions consult.
func (c *Context) Config() *Config {
	return c.cfg
}

// Column returns the width of the currently-open line.
func (c *Context) Column() int {
	return c.acc.column
}

// Indent returns the current indentation width.
func (c *Context) Indent() int {
	return c.acc.indent
}

// Lines returns a copy of the document's lines, the open line last.
func (c *Context) Lines() []string {
	return slices.Clone(c.acc.lines)
}

// LogLen returns the number of events appended so far. Comparing log lengths
// around a rendering is how callers detect what the rendering emitted.
func (c *Context) LogLen() int {
	return len(c.log)
}

// Log returns the events appended at index from onward.
func (c *Context) Log(from int) []Event {
	return slices.Clone(c.log[from:])
}

// Overflowed reports whether an enclosing trial has confirmed that the
// speculative rendering cannot fit. Further steps on an overflowed context are
// pointless: the whole trial will be discarded.
func (c *Context) Overflowed() bool {
	return c.acc.doomed()
}

// Emit normalizes and folds events into the document and records them in the
// log. On a context whose trial has confirmed overflow the events are recorded
// but have no effect on the document.
func (c *Context) Emit(events ...Event) *Context {
	for _, ev := range events {
		for _, e := range normalize(ev) {
			c.log = append(c.log, e)
			c.acc.apply(c.cfg, e)
		}
	}
	return c
}

// AtColumn runs body with the alignment floor set to the given absolute
// column, and the indent too if alsoIndent is set. Both are restored on every
// exit path, including when body replaced the context through trial fallback.
// A negative column is a programmer error.
func (c *Context) AtColumn(column int, alsoIndent bool, body Step) *Context {
	assert.That(column >= 0, "negative absolute column %d", column)

	savedIndent, savedAlign := c.acc.indent, c.acc.align
	c = c.Emit(SetAlign{Columns: column})
	if alsoIndent {
		c = c.Emit(SetIndent{Columns: column})
	}
	c = body(c)
	return c.Emit(RestoreAlign{Columns: savedAlign}, RestoreIndent{Columns: savedIndent})
}

// Measure runs producer against an independent context and returns that
// context without merging it back, purely to answer whether the rendering
// would introduce a line break or exceed the width. The context it is called
// on is never altered. With keepPageWidth the measuring context starts on a
// blank line padded to the current column and keeps the page width; without it
// measurement starts at column zero with unlimited width.
func (c *Context) Measure(producer Step, keepPageWidth bool) *Context {
	m := &Context{
		cfg:          c.cfg,
		acc:          newAccumulator(),
		triviaBefore: c.triviaBefore,
		triviaAfter:  c.triviaAfter,
		source:       c.source,
	}
	m.acc.mode = modeMeasure
	m.acc.indent = c.acc.indent
	m.acc.align = c.acc.align
	if keepPageWidth {
		m.acc.lines[0] = strings.Repeat(" ", c.acc.column)
		m.acc.column = c.acc.column
	} else {
		cfg := *c.cfg
		cfg.PageWidth = math.MaxInt / 2
		m.cfg = &cfg
	}
	return producer(m)
}

// Fits reports whether rendering producer at the current column would stay on
// the current line within the page width.
func (c *Context) Fits(producer Step) bool {
	m := c.Measure(producer, true)
	return len(m.acc.lines) == 1 && m.acc.column <= c.cfg.PageWidth
}

// WouldBreak reports whether rendering producer would produce a line break
// even with unlimited width.
func (c *Context) WouldBreak(producer Step) bool {
	m := c.Measure(producer, false)
	return len(m.acc.lines) > 1
}

// fork clones the context so a speculative rendering can be discarded as a
// unit. The log's capacity is clipped so that appends on either side allocate
// their own backing storage.
func (c *Context) fork() *Context {
	f := *c
	f.acc = c.acc.fork()
	f.log = c.log[:len(c.log):len(c.log)]
	return &f
}

// String flattens the document to text. The pending suffix, if any, is flushed
// onto the final line, which is right-trimmed like a line finished by a break.
// A trial left on the stack at document end is a programmer error.
func (c *Context) String() string {
	assert.That(len(c.acc.trials) == 0, "%d leaked trials at document end", len(c.acc.trials))

	lines := slices.Clone(c.acc.lines)
	last := len(lines) - 1
	lines[last] = strings.TrimRight(lines[last]+c.acc.pending, " \t")
	return strings.Join(lines, "\n")
}

// Render writes the flattened document to w.
func (c *Context) Render(w io.Writer) error {
	_, err := io.WriteString(w, c.String())
	return err
}

// EnterNode splices in trivia attached before the node with the given tag and
// source range. Trivia with no exact range match is silently dropped.
func (c *Context) EnterNode(tag string, r token.Range) *Context {
	return c.splice(c.triviaBefore[tag], r)
}

// LeaveNode splices in trivia attached after the node with the given tag and
// source range. Trivia with no exact range match is silently dropped.
func (c *Context) LeaveNode(tag string, r token.Range) *Context {
	return c.splice(c.triviaAfter[tag], r)
}

func (c *Context) splice(trivia []Trivia, r token.Range) *Context {
	for _, tv := range trivia {
		if tv.Range == r {
			c = c.spliceTrivia(tv)
		}
	}
	return c
}
