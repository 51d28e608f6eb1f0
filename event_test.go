package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/teleivo/assertive/assert"
)

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		in   Event
		want []Event
	}{
		"TextWithoutNewline": {
			in:   WriteText{Text: "abc"},
			want: []Event{WriteText{Text: "abc"}},
		},
		"NonTextEvent": {
			in:   BreakLine{},
			want: []Event{BreakLine{}},
		},
		"IndentEvent": {
			in:   IndentBy{Columns: 4},
			want: []Event{IndentBy{Columns: 4}},
		},
		"LiteralWithNewline": {
			in: WriteText{Text: "x\ny"},
			want: []Event{
				WriteText{Text: "x"},
				LiteralBreak{},
				WriteText{Text: "y"},
			},
		},
		"CarriageReturnsAreStripped": {
			in: WriteText{Text: "x\r\ny"},
			want: []Event{
				WriteText{Text: "x"},
				LiteralBreak{},
				WriteText{Text: "y"},
			},
		},
		"TrailingNewlineKeepsEmptyPart": {
			in: WriteText{Text: "a\n"},
			want: []Event{
				WriteText{Text: "a"},
				LiteralBreak{},
				WriteText{Text: ""},
			},
		},
		"EmbeddedBlankLinePreserved": {
			in: WriteText{Text: "a\n\nb"},
			want: []Event{
				WriteText{Text: "a"},
				LiteralBreak{},
				WriteText{Text: ""},
				LiteralBreak{},
				WriteText{Text: "b"},
			},
		},
		"LineCommentBreaksAsTrivia": {
			in: WriteText{Text: "// a\n// b"},
			want: []Event{
				WriteText{Text: "// a"},
				TriviaBreak{},
				WriteText{Text: "// b"},
			},
		},
		"BlockCommentBreaksAsTrivia": {
			in: WriteText{Text: "/* a\n   b */"},
			want: []Event{
				WriteText{Text: "/* a"},
				TriviaBreak{},
				WriteText{Text: "   b */"},
			},
		},
		"DirectiveBreaksAsTrivia": {
			in: WriteText{Text: "#define X 1\\\n  2"},
			want: []Event{
				WriteText{Text: "#define X 1\\"},
				TriviaBreak{},
				WriteText{Text: "  2"},
			},
		},
		"IndentedCommentBreaksAsTrivia": {
			in: WriteText{Text: "  // a\n  // b"},
			want: []Event{
				WriteText{Text: "  // a"},
				TriviaBreak{},
				WriteText{Text: "  // b"},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := normalize(test.in)

			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("normalize(%v) mismatch (-want +got):\n%s", test.in, diff)
			}
		})
	}
}

func TestNormalizeCarriageReturnEquivalence(t *testing.T) {
	got := normalize(WriteText{Text: "x\r\ny"})
	want := normalize(WriteText{Text: "x\ny"})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestIsBreak(t *testing.T) {
	tests := map[string]struct {
		in   Event
		want bool
	}{
		"BreakLine":    {BreakLine{}, true},
		"LiteralBreak": {LiteralBreak{}, true},
		"TriviaBreak":  {TriviaBreak{}, true},
		"ForcedBreak":  {ForcedBreak{}, true},
		"WriteText":    {WriteText{Text: "a"}, false},
		"Defer":        {DeferUntilBreak{Text: "a"}, false},
		"IndentBy":     {IndentBy{Columns: 2}, false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equals(t, isBreak(test.in), test.want, "isBreak(%v)", test.in)
		})
	}
}
