package style

// Match pairs a cell's registered style with the decision whether that style
// structurally equals the enclosing row's registered style. Row emission uses
// it to decide if the cell may inherit the row style instead of carrying its
// own reference; keeping the decision as a value makes it testable on its own
// rather than an inline boolean threaded through call sites.
type Match struct {
	style      *Style
	matchesRow bool
}

// NewMatch creates a match decision. The style is expected to be registered
// already.
func NewMatch(s *Style, matchesRow bool) Match {
	return Match{style: s, matchesRow: matchesRow}
}

// Style returns the registered cell style.
func (m Match) Style() *Style { return m.style }

// MatchesRow reports whether the cell style equals the row's style.
func (m Match) MatchesRow() bool { return m.matchesRow }

// MatchCell registers the cell's effective style with reg and compares it
// structurally against the row's style.
func MatchCell(reg Registrar, cellStyle, rowStyle *Style) Match {
	registered := reg.Register(cellStyle)
	return NewMatch(registered, Equal(registered, rowStyle))
}
