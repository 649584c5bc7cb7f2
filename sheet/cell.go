// Package sheet models the rows and cells streamed through a writer and the
// style resolution step that hands registered styles to the document emitter.
package sheet

import (
	"github.com/swisscomeventandmedia/openspout/strutil"
	"github.com/swisscomeventandmedia/openspout/style"
)

// CellType tags the value a cell carries.
type CellType int

const (
	CellEmpty CellType = iota
	CellString
	CellNumber
	CellBool
)

// Cell is a single typed cell value with an optional style. A cell without
// its own style inherits the enclosing row's style during resolution.
type Cell struct {
	typ CellType
	s   string
	f   float64
	b   bool
	st  *style.Style
}

// StringCell creates a string cell. A nil style inherits from the row.
func StringCell(v string, st *style.Style) Cell {
	return Cell{typ: CellString, s: v, st: st}
}

// NumberCell creates a numeric cell.
func NumberCell(v float64, st *style.Style) Cell {
	return Cell{typ: CellNumber, f: v, st: st}
}

// BoolCell creates a boolean cell.
func BoolCell(v bool, st *style.Style) Cell {
	return Cell{typ: CellBool, b: v, st: st}
}

// EmptyCell creates a cell with no value, used to keep column positions.
func EmptyCell(st *style.Style) Cell {
	return Cell{typ: CellEmpty, st: st}
}

// Type returns the cell's value tag.
func (c Cell) Type() CellType { return c.typ }

// Style returns the cell's own style, nil when it inherits the row's.
func (c Cell) Style() *style.Style { return c.st }

// Rendered returns the cell value as the emitter writes it: strings as is,
// numbers locale-independently, booleans as "1"/"0".
func (c Cell) Rendered() string {
	switch c.typ {
	case CellString:
		return c.s
	case CellNumber:
		return strutil.FormatFloat(c.f)
	case CellBool:
		if c.b {
			return "1"
		}
		return "0"
	default:
		return ""
	}
}
