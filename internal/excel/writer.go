package excel

import (
	"declFmt/internal/transform"
)

const outputSheet = "Sheet1"

// WriteSheet serializes the output headers and records into a fresh
// single-sheet workbook at path, overwriting any existing file. The workbook
// is assembled fully in memory first, so a failed file never leaves partial
// output behind.
func WriteSheet(path string, headers []string, rows [][]string) error {
	editor := CreateNewFile()
	defer editor.Close()

	if err := editor.SetRow(outputSheet, 1, toRowValues(headers)); err != nil {
		return &transform.WriteError{Path: path, Err: err}
	}
	for i, row := range rows {
		if err := editor.SetRow(outputSheet, i+2, toRowValues(row)); err != nil {
			return &transform.WriteError{Path: path, Err: err}
		}
	}

	if err := editor.SaveAs(path); err != nil {
		return &transform.WriteError{Path: path, Err: err}
	}
	return nil
}

func toRowValues(row []string) []interface{} {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	return values
}
