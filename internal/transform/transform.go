package transform

import (
	"slices"
	"strings"
)

// Output is the formatted result of one workbook transform: the fixed output
// header row plus one formatted record per data row.
type Output struct {
	Headers []string
	Rows    [][]string
}

// NormalizeCell produces the comparison form of a header cell: display text
// with surrounding whitespace trimmed, with blank cells and "unnamed" filler
// placeholders (any case) collapsed to the empty string.
func NormalizeCell(c Cell) string {
	s := strings.TrimSpace(c.Display())
	if s == "" || strings.HasPrefix(strings.ToLower(s), "unnamed") {
		return ""
	}
	return s
}

// NormalizeRow returns the normalized, non-empty cell values of a row in
// order. Filler cells disappear entirely, so a header row with placeholder
// columns interspersed still compares equal to the expected sequence.
func NormalizeRow(row []Cell) []string {
	var vals []string
	for _, c := range row {
		if v := NormalizeCell(c); v != "" {
			vals = append(vals, v)
		}
	}
	return vals
}

// FindHeaderRow scans rows from the top and returns the index of the first
// row whose normalized values match the schema's expected header sequence
// exactly: same values, same order, same count.
func FindHeaderRow(g Grid, sch Schema) (int, error) {
	for i, row := range g {
		if slices.Equal(NormalizeRow(row), sch.InputHeaders) {
			return i, nil
		}
	}
	return 0, &HeaderNotFoundError{Expected: sch.InputHeaders}
}

// LastNonBlankRow returns the index of the last row containing any non-empty
// cell, or -1 when every row is blank. A cell holding an empty text value
// still counts as present; only truly empty cells are blank.
func LastNonBlankRow(g Grid) int {
	last := -1
	for i, row := range g {
		if !rowBlank(row) {
			last = i
		}
	}
	return last
}

func rowBlank(row []Cell) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// columns holds the resolved 0-based column indexes for one located header
// row. unit is positional: quantity column + 1.
type columns struct {
	itemNo     int
	code       int
	name       int
	spec       int
	quantity   int
	unit       int
	source     int
	dest       int
	origin     int
	unitPrice  int
	totalPrice int
	currency   int
}

func columnIndex(header []Cell, name string) (int, bool) {
	for i, c := range header {
		if NormalizeCell(c) == name {
			return i, true
		}
	}
	return 0, false
}

func resolveColumns(header []Cell, sch Schema) (*columns, error) {
	var c columns
	named := []struct {
		name string
		dst  *int
	}{
		{sch.Columns.ItemNo, &c.itemNo},
		{sch.Columns.Code, &c.code},
		{sch.Columns.Name, &c.name},
		{sch.Columns.Spec, &c.spec},
		{sch.Columns.Quantity, &c.quantity},
		{sch.Columns.Source, &c.source},
		{sch.Columns.Destination, &c.dest},
		{sch.Columns.Origin, &c.origin},
		{sch.Columns.UnitPrice, &c.unitPrice},
		{sch.Columns.TotalPrice, &c.totalPrice},
		{sch.Columns.Currency, &c.currency},
	}
	for _, n := range named {
		i, ok := columnIndex(header, n.name)
		if !ok {
			return nil, &MissingColumnError{Column: n.name}
		}
		*n.dst = i
	}
	c.unit = c.quantity + 1
	return &c, nil
}

// Transform runs the whole pipeline over one raw sheet: locate the header
// row, resolve the named columns, then format every data-block row into an
// output record. The data block ends one row before the sheet's last
// non-blank row; that final row is a summary line, never data. An empty data
// block yields zero rows, not an error.
func Transform(g Grid, sch Schema, opts Options) (*Output, error) {
	headerIdx, err := FindHeaderRow(g, sch)
	if err != nil {
		return nil, err
	}

	cols, err := resolveColumns(g[headerIdx], sch)
	if err != nil {
		return nil, err
	}

	end := LastNonBlankRow(g) - 1

	out := &Output{Headers: sch.OutputHeaders, Rows: [][]string{}}
	for r := headerIdx + 1; r <= end; r++ {
		out.Rows = append(out.Rows, formatRecord(g, r, cols, sch, opts))
	}
	return out, nil
}

// formatRecord builds one output record from the data row at index r.
// Data cells keep their trimmed display text; the "unnamed" filtering applies
// to header matching only, so a literal value starting with that word passes
// through intact.
func formatRecord(g Grid, r int, cols *columns, sch Schema, opts Options) []string {
	text := func(col int) string {
		return strings.TrimSpace(g.CellAt(r, col).Display())
	}

	// The name/spec join is unconditional: a single space even when either
	// side is empty, with no re-trim, matching the declaration forms in use.
	nameSpec := text(cols.name) + " " + text(cols.spec)
	quantityUnit := text(cols.quantity) + text(cols.unit)

	unitPrice := CleanMoney(text(cols.unitPrice))
	totalPrice := CleanMoney(text(cols.totalPrice))
	currency := RelabelCurrency(text(cols.currency), sch.CurrencyNames)

	return []string{
		text(cols.itemNo),
		text(cols.code),
		nameSpec,
		quantityUnit,
		PriceBlock(unitPrice, totalPrice, currency, opts),
		text(cols.origin),
		text(cols.dest),
		text(cols.source),
		sch.Exemption,
	}
}
