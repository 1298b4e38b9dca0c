package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"declFmt/internal/excel"
	"declFmt/internal/logger"
	"declFmt/internal/transform"
)

// Portable build: drop the binary into a folder of waybill workbooks and run
// it with no arguments. Only the executable's own directory is scanned and
// every setting keeps its default; the full CLI lives in cmd/declfmt.
func main() {
	exeDir, err := excel.ExeDir()
	if err != nil {
		logger.Error("Failed to locate executable directory", "error", err)
		fmt.Printf("无法定位程序目录: %v\n", err)
		os.Exit(1)
	}

	files := excel.DiscoverWorkbooks([]string{exeDir}, excel.DefaultOutputSuffix)
	if len(files) == 0 {
		fmt.Println("未在以下目录找到可处理的 Excel：")
		fmt.Println(" -", exeDir)
		fmt.Println("\n将 Excel 文件与本程序放在同一目录后重新运行")
		return
	}

	sch := transform.DefaultSchema()
	opts := transform.DefaultOptions()

	results := make([]string, 0, len(files))
	for _, path := range files {
		name := filepath.Base(path)

		result, err := excel.FormatFile(path, sch, opts, excel.DefaultOutputSuffix)
		if err != nil {
			logger.Error("Failed to transform workbook", "file", name, "error", err)
			results = append(results, fmt.Sprintf("✗ %s 失败: %v", name, err))
			continue
		}
		results = append(results, fmt.Sprintf("✓ %s -> %s (%d 行)", name, filepath.Base(result.OutputPath), result.RowCount))
	}

	fmt.Println(strings.Join(results, "\n"))
}
