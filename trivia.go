package layout

import (
	"strings"

	"github.com/teleivo/layout/token"
)

// Trivia is one piece of source-derived content that is not part of the
// semantic tree: a comment, directive, or blank line. A trivia collector
// attaches it to the source range of a syntax-tree node, before or after which
// it is spliced into the output on [Context.EnterNode] and [Context.LeaveNode].
type Trivia struct {
	Range   token.Range
	Before  bool
	Content TriviaContent
}

// TriviaContent is the closed set of trivia payloads.
type TriviaContent interface {
	trivia()
}

// TrailingComment is a comment sharing the line of the content it follows. It
// is deferred and only lands on the line once a break actually occurs.
type TrailingComment struct {
	Text string
}

// BlockComment is a delimited comment that may sit inline or on its own lines.
type BlockComment struct {
	Text string
	// LeadingBreak requests a break before the comment. It only takes effect
	// when the current line already has content.
	LeadingBreak  bool
	TrailingBreak bool
}

// LineComment is a standalone comment occupying its own line.
type LineComment struct {
	Text string
}

// BlankLineMarker preserves a blank line the author left in the source.
type BlankLineMarker struct{}

// Directive is a preprocessor directive occupying its own line.
type Directive struct {
	Text string
}

func (t TrailingComment) trivia() {}
func (t BlockComment) trivia()    {}
func (t LineComment) trivia()     {}
func (t BlankLineMarker) trivia() {}
func (t Directive) trivia()       {}

// spliceTrivia renders one trivia payload through fixed rules. The breaks it
// emits are ForcedBreak so later analysis can tell them apart from breaks the
// content itself produced.
func (c *Context) spliceTrivia(tv Trivia) *Context {
	switch tr := tv.Content.(type) {
	case TrailingComment:
		s := tr.Text
		if !c.lineEndsInSpace() {
			s = " " + s
		}
		return c.Emit(DeferUntilBreak{Text: s})
	case BlockComment:
		if tr.LeadingBreak && c.lineHasContent() {
			c = c.Emit(ForcedBreak{})
		}
		c = c.Emit(WriteText{Text: tr.Text})
		if tr.TrailingBreak {
			c = c.Emit(ForcedBreak{})
		}
		return c
	case LineComment:
		if c.lineHasContent() {
			c = c.Emit(ForcedBreak{})
		}
		return c.Emit(WriteText{Text: tr.Text}, ForcedBreak{})
	case BlankLineMarker:
		if c.lineHasContent() {
			return c.Emit(ForcedBreak{}, ForcedBreak{})
		}
		return c.Emit(ForcedBreak{})
	case Directive:
		if c.lineHasContent() {
			c = c.Emit(ForcedBreak{})
		}
		return c.Emit(WriteText{Text: tr.Text}, ForcedBreak{})
	default:
		return c
	}
}

func (c *Context) lineEndsInSpace() bool {
	line := c.acc.lines[len(c.acc.lines)-1]
	return line == "" || strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t")
}

func (c *Context) lineHasContent() bool {
	return strings.TrimSpace(c.acc.lines[len(c.acc.lines)-1]) != ""
}
