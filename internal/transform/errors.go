package transform

import (
	"fmt"
	"strings"
)

// Per-file failures. A workbook either transforms fully or fails with one of
// these; the run loop renders the failure into its status line and moves on
// to the next file.

// HeaderNotFoundError reports that no row of the sheet matched the expected
// header sequence.
type HeaderNotFoundError struct {
	Expected []string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("未找到匹配的表头: %s", strings.Join(e.Expected, ", "))
}

// MissingSheetError reports that the workbook has no sheet with the wanted
// name. Available lists the sheet names that were present.
type MissingSheetError struct {
	Sheet     string
	Available []string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("未找到工作表: %s", e.Sheet)
}

// MissingColumnError reports that a named column could not be resolved within
// the matched header row.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("缺少必需列: %s", e.Column)
}

// ReadError wraps a failure to open or read a source workbook.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("读取失败: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError wraps a failure to write the output workbook.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("写入失败: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
