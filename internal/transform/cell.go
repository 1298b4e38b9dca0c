package transform

import "strconv"

// CellKind discriminates the value stored in a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is a single spreadsheet value at ingestion time. Readers map every
// library-specific cell representation onto this union; all downstream logic
// works off the display-text projection.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell returns a Cell holding the given string verbatim.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a Cell holding a numeric value.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// EmptyCell returns a Cell with no stored value.
func EmptyCell() Cell {
	return Cell{}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// Display renders the cell the way a spreadsheet shows it: empty cells as "",
// text verbatim, numbers in their shortest decimal form (5.0 renders "5").
func (c Cell) Display() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Grid is the raw ordered contents of one sheet, read with no header
// interpretation. Rows may be ragged.
type Grid [][]Cell

// CellAt returns the cell at the given position, or an empty cell when the
// position is outside the grid. The unit column is read positionally and may
// fall past the end of a row.
func (g Grid) CellAt(row, col int) Cell {
	if row < 0 || row >= len(g) {
		return Cell{}
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}
