package excel

import (
	"path/filepath"
	"strings"

	"declFmt/internal/logger"
	"declFmt/internal/transform"
)

// DefaultOutputSuffix is appended to a source workbook's stem to name its
// output file.
const DefaultOutputSuffix = "_transformed"

// FormatResult summarizes one successfully transformed workbook.
type FormatResult struct {
	InputPath  string
	OutputPath string
	RowCount   int
}

// OutputPath returns where the transformed workbook for a source file goes:
// same directory, same stem, suffix appended, always .xlsx regardless of the
// source format.
func OutputPath(path, suffix string) string {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(path), stem+suffix+".xlsx")
}

// FormatFile runs the whole per-file pipeline: read the waybill grid,
// transform it, and write the output workbook beside the source. Any
// existing output file is overwritten. On failure nothing is written and the
// returned error carries the per-file failure kind.
func FormatFile(path string, sch transform.Schema, opts transform.Options, outputSuffix string) (*FormatResult, error) {
	grid, err := ReadGrid(path, sch.SheetName)
	if err != nil {
		return nil, err
	}

	out, err := transform.Transform(grid, sch, opts)
	if err != nil {
		return nil, err
	}

	outPath := OutputPath(path, outputSuffix)
	if err := WriteSheet(outPath, out.Headers, out.Rows); err != nil {
		return nil, err
	}

	logger.Info("Transformed workbook",
		"input", path,
		"output", outPath,
		"rows", len(out.Rows))

	return &FormatResult{
		InputPath:  path,
		OutputPath: outPath,
		RowCount:   len(out.Rows),
	}, nil
}
