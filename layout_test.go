package layout_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
	"github.com/teleivo/layout"
)

func TestEmitAndString(t *testing.T) {
	tests := map[string]struct {
		in   []layout.Event
		want string
	}{
		"EmptyDocument": {
			in:   nil,
			want: "",
		},
		"SingleLine": {
			in:   []layout.Event{layout.WriteText{Text: "hello"}},
			want: "hello",
		},
		"BreakTrimsAndIndents": {
			in: []layout.Event{
				layout.WriteText{Text: "let a = "},
				layout.IndentBy{Columns: 4},
				layout.BreakLine{},
				layout.WriteText{Text: "1"},
			},
			want: "let a =\n    1",
		},
		"MultilineLiteralPreserved": {
			in:   []layout.Event{layout.WriteText{Text: "\"line one  \nline two\""}},
			want: "\"line one  \nline two\"",
		},
		"MultilineCommentTrimmed": {
			in:   []layout.Event{layout.WriteText{Text: "// one  \n// two"}},
			want: "// one\n// two",
		},
		"PendingSuffixFlushedAtDocumentEnd": {
			in: []layout.Event{
				layout.WriteText{Text: "x = 1"},
				layout.DeferUntilBreak{Text: " // one"},
			},
			want: "x = 1 // one",
		},
		"TrailingWhitespaceTrimmedAtDocumentEnd": {
			in:   []layout.Event{layout.WriteText{Text: "x = 1  "}},
			want: "x = 1",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := layout.New(nil)
			c = c.Emit(test.in...)

			assert.EqualValues(t, c.String(), test.want, "String() after %v", test.in)
		})
	}
}

func TestStringIsIdempotent(t *testing.T) {
	c := layout.New(nil)
	c = c.Emit(layout.WriteText{Text: "x"}, layout.DeferUntilBreak{Text: " // c"})

	first := c.String()
	second := c.String()

	assert.EqualValues(t, second, first, "String() must not alter the document")
}

func TestRender(t *testing.T) {
	c := layout.New(nil)
	c = c.Emit(layout.WriteText{Text: "a"}, layout.BreakLine{}, layout.WriteText{Text: "b"})

	var sb strings.Builder
	err := c.Render(&sb)

	require.NoError(t, err, "Render()")
	assert.EqualValues(t, sb.String(), "a\nb", "Render()")
}

func TestAtColumn(t *testing.T) {
	t.Run("AlignsBreaksToAbsoluteColumn", func(t *testing.T) {
		c := layout.New(nil)
		c = c.Emit(layout.WriteText{Text: "foo: "})
		c = c.AtColumn(5, false, func(c *layout.Context) *layout.Context {
			return c.Emit(layout.WriteText{Text: "bar,"}, layout.BreakLine{}, layout.WriteText{Text: "baz"})
		})

		assert.EqualValues(t, c.String(), "foo: bar,\n     baz", "aligned continuation")
	})

	t.Run("RestoresIndentAndAlign", func(t *testing.T) {
		c := layout.New(nil)
		c = c.Emit(layout.WriteText{Text: "head "})
		c = c.AtColumn(5, true, func(c *layout.Context) *layout.Context {
			return c.Emit(layout.WriteText{Text: "a"}, layout.BreakLine{}, layout.WriteText{Text: "b"})
		})
		c = c.Emit(layout.BreakLine{}, layout.WriteText{Text: "tail"})

		assert.EqualValues(t, c.String(), "head a\n     b\ntail", "break after the scope returns to the saved indent")
		assert.Equals(t, c.Indent(), 0, "indent restored")
	})

	t.Run("RestoresAcrossTrialFallback", func(t *testing.T) {
		c := layout.New(nil)
		c = c.AtColumn(3, false, func(c *layout.Context) *layout.Context {
			return c.TryCompact(2,
				layout.Write("abcdefgh"),
				layout.Seq(layout.Write("ab"), layout.Newline(), layout.Write("cd")),
			)
		})
		c = c.Emit(layout.BreakLine{}, layout.WriteText{Text: "x"})

		assert.EqualValues(t, c.String(), "ab\n   cd\nx", "align applies inside, restores after")
	})

	t.Run("PanicsOnNegativeColumn", func(t *testing.T) {
		defer func() {
			if err := recover(); err == nil {
				t.Errorf("AtColumn(-1): want panic but got none")
			}
		}()
		c := layout.New(nil)
		_ = c.AtColumn(-1, false, layout.Nop())
	})
}

func TestMeasure(t *testing.T) {
	t.Run("DoesNotAlterContext", func(t *testing.T) {
		c := layout.New(nil)
		c = c.Emit(layout.WriteText{Text: "before"})

		lines, column, logLen := c.Lines(), c.Column(), c.LogLen()
		m := c.Measure(layout.Seq(layout.Write("measured"), layout.Newline()), true)

		require.NotNil(t, m, "Measure()")
		if diff := cmp.Diff(lines, c.Lines()); diff != "" {
			t.Errorf("lines mismatch (-want +got):\n%s", diff)
		}
		assert.Equals(t, c.Column(), column, "column unchanged")
		assert.Equals(t, c.LogLen(), logLen, "log unchanged")
	})

	t.Run("KeepPageWidthStartsAtCurrentColumn", func(t *testing.T) {
		c := layout.New(nil)
		c = c.Emit(layout.WriteText{Text: "0123"})

		m := c.Measure(layout.Write("ab"), true)

		assert.Equals(t, m.Column(), 6, "measured column")
		assert.Equals(t, len(m.Lines()), 1, "measured line count")
	})

	t.Run("UnlimitedWidthStartsAtZero", func(t *testing.T) {
		c := layout.New(nil)
		c = c.Emit(layout.WriteText{Text: "0123"})

		m := c.Measure(layout.Write("ab"), false)

		assert.Equals(t, m.Column(), 2, "measured column")
	})
}

func TestFits(t *testing.T) {
	cfg := layout.DefaultConfig()
	cfg.PageWidth = 10

	tests := map[string]struct {
		prefix string
		step   layout.Step
		want   bool
	}{
		"FitsOnEmptyLine":     {"", layout.Write("0123456789"), true},
		"TooWide":             {"", layout.Write("0123456789a"), false},
		"PrefixCounts":        {"01234", layout.Write("56789"), true},
		"PrefixPushesOver":    {"012345", layout.Write("56789"), false},
		"BreakNeverFits":      {"", layout.Seq(layout.Write("a"), layout.Newline()), false},
		"EmptyStepAlwaysFits": {"", layout.Nop(), true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := layout.New(cfg)
			if test.prefix != "" {
				c = c.Emit(layout.WriteText{Text: test.prefix})
			}

			assert.Equals(t, c.Fits(test.step), test.want, "Fits")
		})
	}
}

func TestWouldBreak(t *testing.T) {
	c := layout.New(nil)

	assert.False(t, c.WouldBreak(layout.Write(strings.Repeat("a", 200))), "long text alone breaks no line")
	assert.True(t, c.WouldBreak(layout.Seq(layout.Write("a"), layout.Newline())), "explicit break")
	assert.True(t, c.WouldBreak(layout.Write("\"a\nb\"")), "multiline literal breaks")
}
