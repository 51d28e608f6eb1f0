package layout

// BracketKind identifies a bracketed construct for per-kind layout thresholds.
type BracketKind int

const (
	Paren BracketKind = iota
	Square
	Curly
	Angle
)

func (k BracketKind) glyphs() (string, string) {
	switch k {
	case Paren:
		return "(", ")"
	case Square:
		return "[", "]"
	case Curly:
		return "{", "}"
	case Angle:
		return "<", ">"
	default:
		panic("bracket kind not implemented")
	}
}

// Threshold forces a bracketed construct onto multiple lines before the page
// width would. A zero field imposes no limit of that dimension.
type Threshold struct {
	MaxWidth int // flat width in columns above which the construct breaks
	MaxItems int // item count above which the construct breaks
}

// Config is the read-only options record consulted by layout decisions. It is
// produced by configuration loading outside of this package and never modified
// by the engine.
type Config struct {
	// PageWidth is the max number of columns after which lines are broken up
	// into multiple lines. Not every construct can be broken up though.
	PageWidth int
	// IndentWidth is the number of columns one indentation level adds.
	IndentWidth int

	SpaceAroundDelimiters bool // pad the inside of bracket tokens with a space
	SpaceBeforeColon      bool
	SpaceBeforeComma      bool
	SpaceAfterComma       bool
	SpaceBeforeSemicolon  bool
	SpaceAfterSemicolon   bool

	// AlignBrackets aligns the continuation lines of a broken bracketed
	// construct to the column of its opening bracket instead of indenting by
	// IndentWidth.
	AlignBrackets bool
	// BlankAroundMultiline separates list items from a multiline neighbor with
	// a blank line. When false, Join degrades to a plain uniform break between
	// items.
	BlankAroundMultiline bool
	// Compact keeps the closing bracket of a broken construct on the last item
	// line (Stroustrup style) instead of giving it its own line.
	Compact bool

	// Thresholds force multi-line layout per bracketed-construct kind.
	Thresholds map[BracketKind]Threshold
}

// DefaultConfig returns the configuration used when the caller provides none.
func DefaultConfig() *Config {
	return &Config{
		PageWidth:            80,
		IndentWidth:          4,
		SpaceAfterComma:      true,
		BlankAroundMultiline: true,
	}
}
