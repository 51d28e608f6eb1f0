package layout

// Write is a step that emits literal text.
func Write(text string) Step {
	return func(c *Context) *Context {
		return c.Emit(WriteText{Text: text})
	}
}

// Newline is a step that breaks the line.
func Newline() Step {
	return func(c *Context) *Context {
		return c.Emit(BreakLine{})
	}
}

// Space is a step that emits a single space. Trailing spaces are trimmed when
// the line is finished.
func Space() Step {
	return Write(" ")
}

// Comma is a step that emits a comma with configuration-driven spacing.
func Comma() Step {
	return func(c *Context) *Context {
		s := ","
		if c.cfg.SpaceBeforeComma {
			s = " " + s
		}
		if c.cfg.SpaceAfterComma {
			s += " "
		}
		return c.Emit(WriteText{Text: s})
	}
}

// Semicolon is a step that emits a semicolon with configuration-driven spacing.
func Semicolon() Step {
	return func(c *Context) *Context {
		s := ";"
		if c.cfg.SpaceBeforeSemicolon {
			s = " " + s
		}
		if c.cfg.SpaceAfterSemicolon {
			s += " "
		}
		return c.Emit(WriteText{Text: s})
	}
}

// Colon is a step that emits a colon, preceded by a space when configured and
// always followed by one.
func Colon() Step {
	return func(c *Context) *Context {
		s := ": "
		if c.cfg.SpaceBeforeColon {
			s = " " + s
		}
		return c.Emit(WriteText{Text: s})
	}
}

// Open is a step that emits the opening token of a bracket kind, padded inside
// when delimiters are configured spacious.
func Open(kind BracketKind) Step {
	return func(c *Context) *Context {
		open, _ := kind.glyphs()
		if c.cfg.SpaceAroundDelimiters {
			open += " "
		}
		return c.Emit(WriteText{Text: open})
	}
}

// Close is a step that emits the closing token of a bracket kind, padded
// inside when delimiters are configured spacious.
func Close(kind BracketKind) Step {
	return func(c *Context) *Context {
		_, closing := kind.glyphs()
		if c.cfg.SpaceAroundDelimiters {
			closing = " " + closing
		}
		return c.Emit(WriteText{Text: closing})
	}
}

// Indented runs body one indentation level deeper.
func Indented(body Step) Step {
	return func(c *Context) *Context {
		w := c.cfg.IndentWidth
		c = c.Emit(IndentBy{Columns: w})
		c = body(c)
		return c.Emit(UnindentBy{Columns: w})
	}
}

// Bracketed lays out a bracketed, comma-separated construct. It tries the
// compact single-line form under the kind's width threshold (the page width if
// none is configured) and falls back to one item per line. The kind's item
// count threshold forces the expanded form outright. The expanded form aligns
// continuation lines to the opening bracket or indents one level, and gives
// the closing bracket its own line unless compact layout is configured.
func Bracketed(kind BracketKind, items ...Step) Step {
	return func(c *Context) *Context {
		threshold := c.cfg.Thresholds[kind]

		long := func(c *Context) *Context {
			c = Open(kind)(c)
			body := func(c *Context) *Context {
				for i, item := range items {
					if i > 0 {
						c = c.Emit(WriteText{Text: ","})
					}
					c = c.Emit(BreakLine{})
					c = item(c)
					if c.Overflowed() {
						break
					}
				}
				return c
			}
			if c.cfg.AlignBrackets {
				c = c.AtColumn(c.Column(), false, body)
			} else {
				c = Indented(body)(c)
			}
			if !c.cfg.Compact {
				c = c.Emit(BreakLine{})
			}
			return Close(kind)(c)
		}

		if threshold.MaxItems > 0 && len(items) > threshold.MaxItems {
			return long(c)
		}

		short := func(c *Context) *Context {
			c = Open(kind)(c)
			for i, item := range items {
				if i > 0 {
					c = Comma()(c)
				}
				c = item(c)
				if c.Overflowed() {
					return c
				}
			}
			return Close(kind)(c)
		}

		maxWidth := c.cfg.PageWidth
		if threshold.MaxWidth > 0 {
			maxWidth = threshold.MaxWidth
		}
		return c.TryCompact(maxWidth, short, long)
	}
}
