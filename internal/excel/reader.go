package excel

import (
	"path/filepath"
	"strings"

	"declFmt/internal/transform"

	"github.com/yamitzky/xlrd-go/xlrd"
)

// ReadGrid loads the named sheet of a workbook as a raw cell grid with no
// header interpretation. Legacy .xls books go through the xlrd port, which
// reads the BIFF format excelize cannot; everything else goes through
// excelize. Library cell representations are mapped onto the transform cell
// union here, at the boundary, so the pipeline never sees either library.
func ReadGrid(path, sheetName string) (transform.Grid, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return readGridXLS(path, sheetName)
	}
	return readGridXLSX(path, sheetName)
}

func readGridXLSX(path, sheetName string) (transform.Grid, error) {
	editor, err := OpenFile(path)
	if err != nil {
		return nil, &transform.ReadError{Path: path, Err: err}
	}
	defer editor.Close()

	if !editor.HasSheet(sheetName) {
		return nil, &transform.MissingSheetError{Sheet: sheetName, Available: editor.GetSheetNames()}
	}

	rows, err := editor.GetAllRows(sheetName)
	if err != nil {
		return nil, &transform.ReadError{Path: path, Err: err}
	}

	grid := make(transform.Grid, len(rows))
	for i, row := range rows {
		cells := make([]transform.Cell, len(row))
		for j, value := range row {
			// excelize hands back display-formatted strings, numbers
			// already rendered; only the empty string means "no cell".
			if value == "" {
				cells[j] = transform.EmptyCell()
			} else {
				cells[j] = transform.TextCell(value)
			}
		}
		grid[i] = cells
	}
	return grid, nil
}

func readGridXLS(path, sheetName string) (transform.Grid, error) {
	book, err := xlrd.OpenWorkbook(path, &xlrd.OpenWorkbookOptions{})
	if err != nil {
		return nil, &transform.ReadError{Path: path, Err: err}
	}
	defer book.ReleaseResources()

	sheet, err := book.SheetByName(sheetName)
	if err != nil {
		return nil, &transform.MissingSheetError{Sheet: sheetName, Available: book.SheetNames()}
	}

	grid := make(transform.Grid, sheet.NRows)
	for r := 0; r < sheet.NRows; r++ {
		cells := make([]transform.Cell, sheet.NCols)
		for c := 0; c < sheet.NCols; c++ {
			cells[c] = xlsCell(sheet, r, c)
		}
		grid[r] = cells
	}
	return grid, nil
}

// xlsCell maps one BIFF cell onto the transform cell union. Error cells are
// treated as empty, booleans become their display text, and date cells
// arrive as plain numbers because formatting info is not loaded.
func xlsCell(sheet *xlrd.Sheet, r, c int) transform.Cell {
	switch sheet.CellType(r, c) {
	case xlrd.XL_CELL_TEXT:
		if s, ok := sheet.CellValue(r, c).(string); ok {
			return transform.TextCell(s)
		}
		return transform.EmptyCell()
	case xlrd.XL_CELL_NUMBER:
		switch v := sheet.CellValue(r, c).(type) {
		case float64:
			return transform.NumberCell(v)
		case float32:
			return transform.NumberCell(float64(v))
		case int:
			return transform.NumberCell(float64(v))
		}
		return transform.EmptyCell()
	case xlrd.XL_CELL_BOOLEAN:
		switch v := sheet.CellValue(r, c).(type) {
		case bool:
			if v {
				return transform.TextCell("TRUE")
			}
			return transform.TextCell("FALSE")
		case int:
			if v != 0 {
				return transform.TextCell("TRUE")
			}
			return transform.TextCell("FALSE")
		}
		return transform.EmptyCell()
	default:
		// XL_CELL_EMPTY, XL_CELL_BLANK, XL_CELL_ERROR
		return transform.EmptyCell()
	}
}
