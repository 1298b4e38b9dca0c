package doctor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"declFmt/internal/excel"
	"declFmt/internal/transform"
)

// maxCandidateRows caps how many leading rows an inspection reports; header
// rows in practice sit within the first few rows of the waybill sheet.
const maxCandidateRows = 15

// RowSummary is one leading row of the sheet in normalized form.
type RowSummary struct {
	Index  int
	Values []string
}

// RowMatch compares the row that came closest to the expected header
// sequence against it.
type RowMatch struct {
	Index   int
	Missing []string
	Extra   []string
}

// Report is the deterministic diagnosis of one workbook.
type Report struct {
	Path       string
	SheetNames []string
	HasSheet   bool
	SheetName  string

	HeaderRow    int // -1 when no row matches
	LastNonBlank int
	DataRows     int

	Candidates []RowSummary
	Best       *RowMatch // set when no row matches
}

// Inspect analyzes why a workbook does or does not transform: which sheets
// it has, which leading rows look like headers, whether any row matches the
// expected sequence, and what the data block would be. Unreadable files are
// the only hard failure.
func Inspect(path string, sch transform.Schema) (*Report, error) {
	rep := &Report{
		Path:      path,
		SheetName: sch.SheetName,
		HeaderRow: -1,
	}

	grid, err := excel.ReadGrid(path, sch.SheetName)
	if err != nil {
		var missing *transform.MissingSheetError
		if errors.As(err, &missing) {
			rep.SheetNames = missing.Available
			return rep, nil
		}
		return nil, err
	}
	rep.HasSheet = true

	for i, row := range grid {
		if i >= maxCandidateRows {
			break
		}
		rep.Candidates = append(rep.Candidates, RowSummary{
			Index:  i,
			Values: transform.NormalizeRow(row),
		})
	}

	rep.LastNonBlank = transform.LastNonBlankRow(grid)

	if idx, err := transform.FindHeaderRow(grid, sch); err == nil {
		rep.HeaderRow = idx
		if n := rep.LastNonBlank - 1 - idx; n > 0 {
			rep.DataRows = n
		}
		return rep, nil
	}

	rep.Best = bestMatch(grid, sch.InputHeaders)
	return rep, nil
}

// bestMatch finds the row sharing the most values with the expected header
// sequence and reports what differs. Ties go to the earlier row.
func bestMatch(grid transform.Grid, expected []string) *RowMatch {
	want := make(map[string]bool, len(expected))
	for _, h := range expected {
		want[h] = true
	}

	best := -1
	bestOverlap := 0
	var bestValues []string
	for i, row := range grid {
		values := transform.NormalizeRow(row)
		overlap := 0
		for _, v := range values {
			if want[v] {
				overlap++
			}
		}
		if overlap > bestOverlap {
			best = i
			bestOverlap = overlap
			bestValues = values
		}
	}
	if best < 0 {
		return nil
	}

	have := make(map[string]bool, len(bestValues))
	for _, v := range bestValues {
		have[v] = true
	}

	match := &RowMatch{Index: best}
	for _, h := range expected {
		if !have[h] {
			match.Missing = append(match.Missing, h)
		}
	}
	for _, v := range bestValues {
		if !want[v] {
			match.Extra = append(match.Extra, v)
		}
	}
	return match
}

// WriteReport renders an inspection for the console.
func WriteReport(w io.Writer, rep *Report) {
	fmt.Fprintf(w, "File: %s\n", rep.Path)

	if !rep.HasSheet {
		fmt.Fprintf(w, "✗ 未找到工作表: %s\n", rep.SheetName)
		fmt.Fprintf(w, "  Sheets present: %s\n", strings.Join(rep.SheetNames, ", "))
		return
	}
	fmt.Fprintf(w, "✓ 工作表 %s 存在\n", rep.SheetName)

	fmt.Fprintf(w, "\nLeading rows (normalized, blanks dropped):\n")
	for _, c := range rep.Candidates {
		marker := "  "
		if c.Index == rep.HeaderRow {
			marker = "→ "
		}
		if len(c.Values) == 0 {
			fmt.Fprintf(w, "%srow %d: (blank)\n", marker, c.Index)
		} else {
			fmt.Fprintf(w, "%srow %d: %s\n", marker, c.Index, strings.Join(c.Values, " | "))
		}
	}

	if rep.HeaderRow >= 0 {
		fmt.Fprintf(w, "\n✓ 表头行: %d\n", rep.HeaderRow)
		fmt.Fprintf(w, "  Last non-blank row: %d (final row is the summary line)\n", rep.LastNonBlank)
		fmt.Fprintf(w, "  Data rows: %d\n", rep.DataRows)
		return
	}

	fmt.Fprintf(w, "\n✗ 未找到匹配的表头\n")
	if rep.Best == nil {
		fmt.Fprintf(w, "  No row shares any value with the expected headers.\n")
		return
	}
	fmt.Fprintf(w, "  Closest row: %d\n", rep.Best.Index)
	if len(rep.Best.Missing) > 0 {
		fmt.Fprintf(w, "  Missing headers: %s\n", strings.Join(rep.Best.Missing, ", "))
	}
	if len(rep.Best.Extra) > 0 {
		fmt.Fprintf(w, "  Unexpected values: %s\n", strings.Join(rep.Best.Extra, ", "))
	}
}
