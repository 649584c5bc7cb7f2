package sheet

import (
	"github.com/swisscomeventandmedia/openspout/style"
)

// Row is one streamed row: its cells plus the row-level style cells may
// inherit from.
type Row struct {
	cells []Cell
	st    *style.Style
}

// NewRow creates a row. A nil style falls back to the default style so that
// resolution never has to deal with styleless rows.
func NewRow(st *style.Style, cells ...Cell) Row {
	if st == nil {
		st = style.Default()
	}
	return Row{cells: cells, st: st}
}

// Cells returns the row's cells.
func (r Row) Cells() []Cell { return r.cells }

// Style returns the row-level style.
func (r Row) Style() *style.Style { return r.st }

// ResolveStyles registers the row style and every cell's effective style
// with reg, returning one match decision per cell in cell order. The emitter
// uses the matches to reference style identities and to drop per-cell style
// references where the row style already applies.
func (r Row) ResolveStyles(reg style.Registrar) []style.Match {
	rowStyle := reg.Register(r.st)

	matches := make([]style.Match, len(r.cells))
	for i, c := range r.cells {
		effective := c.Style()
		if effective == nil {
			effective = rowStyle
		}
		matches[i] = style.MatchCell(reg, effective, rowStyle)
	}
	return matches
}
