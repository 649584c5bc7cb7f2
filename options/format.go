package options

import (
	"github.com/swisscomeventandmedia/openspout/config"
)

// Option names understood by the writers. Which writer supports which name
// is declared in ForFormat - the whitelist is data, not dispatch.
const (
	TempFolder          Name = "TEMP_FOLDER"
	DefaultColumnWidth  Name = "DEFAULT_COLUMN_WIDTH"
	DefaultRowHeight    Name = "DEFAULT_ROW_HEIGHT"
	ColumnWidths        Name = "COLUMN_WIDTHS" // accumulates, one declared range per Add
	MergeCells          Name = "MERGE_CELLS"   // accumulates
	UseInlineStrings    Name = "SHOULD_USE_INLINE_STRINGS"
	NewSheetsAutomatic  Name = "SHOULD_CREATE_NEW_SHEETS_AUTOMATICALLY"
	FieldDelimiter      Name = "FIELD_DELIMITER"
	FieldEnclosure      Name = "FIELD_ENCLOSURE"
	AddByteOrderMark    Name = "SHOULD_ADD_BOM"
	DefaultStyleApplied Name = "SHOULD_APPLY_DEFAULT_STYLE"
)

// ForFormat returns the option whitelist and defaults for the given output
// format, seeded from the writer section of the configuration.
func ForFormat(f config.OutputFmt, w config.WriterConfig) *Store {
	common := []Name{TempFolder, DefaultStyleApplied}
	defaults := map[Name]Value{
		TempFolder: String(w.TempFolder),
	}

	switch f {
	case config.OutputFmtXlsx:
		supported := append(common,
			DefaultColumnWidth, DefaultRowHeight, ColumnWidths, MergeCells,
			UseInlineStrings, NewSheetsAutomatic)
		defaults[UseInlineStrings] = Bool(w.UseInlineStrings)
		defaults[NewSheetsAutomatic] = Bool(w.NewSheetsAutomatically)
		defaults[DefaultColumnWidth] = Float(w.DefaultColumnWidth)
		defaults[DefaultRowHeight] = Float(w.DefaultRowHeight)
		return NewStore(supported, defaults)
	case config.OutputFmtOds:
		supported := append(common,
			DefaultColumnWidth, DefaultRowHeight, MergeCells, NewSheetsAutomatic)
		defaults[NewSheetsAutomatic] = Bool(w.NewSheetsAutomatically)
		defaults[DefaultColumnWidth] = Float(w.DefaultColumnWidth)
		defaults[DefaultRowHeight] = Float(w.DefaultRowHeight)
		return NewStore(supported, defaults)
	case config.OutputFmtCsv:
		supported := append(common, FieldDelimiter, FieldEnclosure, AddByteOrderMark)
		defaults[FieldDelimiter] = String(",")
		defaults[FieldEnclosure] = String(`"`)
		defaults[AddByteOrderMark] = Bool(true)
		return NewStore(supported, defaults)
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
