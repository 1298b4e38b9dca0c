package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Editor wraps an excelize workbook behind the handful of operations the
// tool needs: open, enumerate sheets, read raw rows, write rows, save.
type Editor struct {
	file     *excelize.File
	filepath string
}

// OpenFile opens an existing workbook
func OpenFile(filepath string) (*Editor, error) {
	file, err := excelize.OpenFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}
	return &Editor{
		file:     file,
		filepath: filepath,
	}, nil
}

// CreateNewFile creates a new workbook in memory
func CreateNewFile() *Editor {
	file := excelize.NewFile()
	return &Editor{
		file:     file,
		filepath: "",
	}
}

// GetSheetNames returns all sheet names in the workbook
func (e *Editor) GetSheetNames() []string {
	return e.file.GetSheetList()
}

// HasSheet reports whether the workbook contains a sheet with the given name.
// Sheet names are matched the way the spreadsheet application matches them.
func (e *Editor) HasSheet(sheet string) bool {
	idx, err := e.file.GetSheetIndex(sheet)
	return err == nil && idx >= 0
}

// GetAllRows returns all rows from a sheet as display-formatted strings.
// Empty cells come back as empty strings; trailing empty cells are trimmed.
func (e *Editor) GetAllRows(sheet string) ([][]string, error) {
	return e.file.GetRows(sheet)
}

// SetRow writes one row of values starting at column A of the given 1-based
// row number. String values are stored as text, never coerced to numbers, so
// item numbers and formatted prices keep their exact digits.
func (e *Editor) SetRow(sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %v", row, err)
	}
	return e.file.SetSheetRow(sheet, cell, &values)
}

// SetCellValue sets a value in a specific cell
func (e *Editor) SetCellValue(sheet, cell string, value interface{}) error {
	return e.file.SetCellValue(sheet, cell, value)
}

// Save saves the workbook to the original filepath
func (e *Editor) Save() error {
	if e.filepath == "" {
		return fmt.Errorf("no filepath specified, use SaveAs instead")
	}
	return e.file.SaveAs(e.filepath)
}

// SaveAs saves the workbook with a new name, overwriting silently
func (e *Editor) SaveAs(filepath string) error {
	e.filepath = filepath
	return e.file.SaveAs(filepath)
}

// Close closes the workbook
func (e *Editor) Close() error {
	return e.file.Close()
}
