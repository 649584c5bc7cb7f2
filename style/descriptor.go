// Package style implements the formatting model shared by all writers:
// immutable style descriptors, structural interning with stable integer
// identities and the row/cell match decision used during row emission.
package style

// Default formatting applied when a builder does not override it.
const (
	DefaultFontName = "Arial"
	DefaultFontSize = 11
)

// BorderStyleNames for the supported border line styles.
const (
	BorderNone   = ""
	BorderThin   = "thin"
	BorderMedium = "medium"
	BorderThick  = "thick"
	BorderDashed = "dashed"
	BorderDotted = "dotted"
	BorderDouble = "double"
)

// Font describes character formatting of a cell.
type Font struct {
	Name          string
	Size          float64
	Bold          bool
	Italic        bool
	Underline     bool
	StrikeThrough bool
	Color         string // RGB, e.g. "FF0000"
}

// Fill describes cell background.
type Fill struct {
	Color string // RGB background color, empty means no fill
}

// BorderEdge describes a single border line.
type BorderEdge struct {
	Style string // one of the Border* constants
	Color string
}

// Border describes all four cell borders.
type Border struct {
	Left   BorderEdge
	Right  BorderEdge
	Top    BorderEdge
	Bottom BorderEdge
}

// Alignment describes cell content placement.
type Alignment struct {
	Horizontal  string // "left", "center", "right" or empty for format default
	Vertical    string // "top", "center", "bottom" or empty
	WrapText    bool
	ShrinkToFit bool
}

// key is the structural identity of a style - everything except the
// registry-assigned ID. Being a comparable struct it doubles as the
// interning map key.
type key struct {
	font      Font
	fill      Fill
	border    Border
	alignment Alignment
	format    string
}

// Style is an immutable formatting descriptor. Values are created by a
// Builder and never change afterwards; the only mutation ever applied is the
// one-time identity assignment performed by a registry. Equality between
// styles is structural over all formatting fields.
type Style struct {
	id         int
	registered bool

	font      Font
	fill      Fill
	border    Border
	alignment Alignment
	format    string // number format code, e.g. "0.00"
}

// ID returns the registry-assigned identity. The boolean is false until the
// style has been registered.
func (s *Style) ID() (int, bool) {
	return s.id, s.registered
}

// Font returns character formatting.
func (s *Style) Font() Font { return s.font }

// Fill returns cell background formatting.
func (s *Style) Fill() Fill { return s.fill }

// Border returns cell border formatting.
func (s *Style) Border() Border { return s.border }

// Alignment returns content placement formatting.
func (s *Style) Alignment() Alignment { return s.alignment }

// Format returns the number format code, empty for the general format.
func (s *Style) Format() string { return s.format }

func (s *Style) key() key {
	return key{
		font:      s.font,
		fill:      s.fill,
		border:    s.border,
		alignment: s.alignment,
		format:    s.format,
	}
}

// Equal reports whether two styles have identical formatting, ignoring
// assigned identities. Two nil styles are equal, nil never equals non-nil.
func Equal(a, b *Style) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.key() == b.key()
}

var defaultStyle = NewBuilder().Build()

// Default returns the shared descriptor with default formatting. Callers
// must not assume it is unregistered - any registry may have interned it
// already within its own session.
func Default() *Style {
	// Hand out a copy so per-registry identity assignment never leaks
	// between writer sessions.
	c := *defaultStyle
	c.id = 0
	c.registered = false
	return &c
}
