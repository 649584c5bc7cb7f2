package style

// Builder assembles immutable Style values. The zero builder starts from the
// default font; every Build call returns an independent unregistered
// descriptor, so one builder can stamp out many styles.
type Builder struct {
	s Style
}

// NewBuilder returns a builder seeded with default formatting.
func NewBuilder() *Builder {
	return &Builder{s: Style{font: Font{Name: DefaultFontName, Size: DefaultFontSize}}}
}

// FontName sets the font name.
func (b *Builder) FontName(name string) *Builder {
	b.s.font.Name = name
	return b
}

// FontSize sets the font size in points.
func (b *Builder) FontSize(size float64) *Builder {
	b.s.font.Size = size
	return b
}

// Bold enables bold text.
func (b *Builder) Bold() *Builder {
	b.s.font.Bold = true
	return b
}

// Italic enables italic text.
func (b *Builder) Italic() *Builder {
	b.s.font.Italic = true
	return b
}

// Underline enables underlined text.
func (b *Builder) Underline() *Builder {
	b.s.font.Underline = true
	return b
}

// StrikeThrough enables struck-through text.
func (b *Builder) StrikeThrough() *Builder {
	b.s.font.StrikeThrough = true
	return b
}

// FontColor sets the text color (RGB, e.g. "FF0000").
func (b *Builder) FontColor(rgb string) *Builder {
	b.s.font.Color = rgb
	return b
}

// BackgroundColor sets the cell fill color.
func (b *Builder) BackgroundColor(rgb string) *Builder {
	b.s.fill.Color = rgb
	return b
}

// Border sets all four border edges at once.
func (b *Builder) Border(edge BorderEdge) *Builder {
	b.s.border = Border{Left: edge, Right: edge, Top: edge, Bottom: edge}
	return b
}

// BorderLeft sets the left border edge.
func (b *Builder) BorderLeft(edge BorderEdge) *Builder {
	b.s.border.Left = edge
	return b
}

// BorderRight sets the right border edge.
func (b *Builder) BorderRight(edge BorderEdge) *Builder {
	b.s.border.Right = edge
	return b
}

// BorderTop sets the top border edge.
func (b *Builder) BorderTop(edge BorderEdge) *Builder {
	b.s.border.Top = edge
	return b
}

// BorderBottom sets the bottom border edge.
func (b *Builder) BorderBottom(edge BorderEdge) *Builder {
	b.s.border.Bottom = edge
	return b
}

// Align sets horizontal and vertical alignment. Empty string keeps the
// format default for that axis.
func (b *Builder) Align(horizontal, vertical string) *Builder {
	b.s.alignment.Horizontal = horizontal
	b.s.alignment.Vertical = vertical
	return b
}

// WrapText enables text wrapping.
func (b *Builder) WrapText() *Builder {
	b.s.alignment.WrapText = true
	return b
}

// ShrinkToFit enables shrink-to-fit rendering.
func (b *Builder) ShrinkToFit() *Builder {
	b.s.alignment.ShrinkToFit = true
	return b
}

// Format sets the number format code (e.g. "0.00", "yyyy-mm-dd").
func (b *Builder) Format(code string) *Builder {
	b.s.format = code
	return b
}

// Build returns the assembled style. The builder remains usable and further
// changes to it do not affect already built values.
func (b *Builder) Build() *Style {
	c := b.s
	return &c
}
