package main

import (
	"fmt"
	"os"
	"path/filepath"

	"declFmt/internal/config"
	"declFmt/internal/doctor"
	"declFmt/internal/excel"
	"declFmt/internal/logger"
	"declFmt/internal/pick"
	"declFmt/internal/transform"

	"github.com/fatih/color"
)

func main() {
	cfg, err := config.LoadConfig("configs/config.toml")
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		runTransform(cfg, "")
		return
	}

	command := os.Args[1]

	switch command {
	case "run":
		arg := ""
		if len(os.Args) > 2 {
			arg = os.Args[2]
		}
		runTransform(cfg, arg)
	case "pick":
		arg := ""
		if len(os.Args) > 2 {
			arg = os.Args[2]
		}
		runPick(cfg, arg)
	case "doctor":
		if len(os.Args) < 3 {
			fmt.Println("Error: doctor command requires a workbook path")
			fmt.Println("Usage: declfmt doctor <file>")
			return
		}
		runDoctor(cfg, os.Args[2])
	case "help", "-h", "--help":
		printUsage()
	default:
		// A bare existing path is shorthand for "run <path>".
		if _, err := os.Stat(command); err == nil {
			runTransform(cfg, command)
			return
		}
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("declfmt - 面单 waybill transformer")
	fmt.Println("\nUsage:")
	fmt.Println("  declfmt                     - Transform workbooks found near the tool")
	fmt.Println("  declfmt run [path]          - Transform workbooks in a directory (or a file's directory)")
	fmt.Println("  declfmt pick [path]         - Choose which workbooks to transform")
	fmt.Println("  declfmt doctor <file>       - Explain why a workbook fails to transform")
}

// settings turns the config file into the schema and formatting options the
// pipeline takes.
func settings(cfg *config.Config) (transform.Schema, transform.Options) {
	sch := transform.DefaultSchema()
	if cfg.Transform.SheetName != "" {
		sch.SheetName = cfg.Transform.SheetName
	}

	opts := transform.DefaultOptions()
	if cfg.Transform.PriceSeparator != "" {
		opts.PriceSeparator = cfg.Transform.PriceSeparator
	}
	return sch, opts
}

func runTransform(cfg *config.Config, arg string) {
	dirs := excel.CandidateDirs(arg, cfg.Scan.ExtraDirs)
	files := excel.DiscoverWorkbooks(dirs, cfg.Transform.OutputSuffix)

	logger.Info("Starting transform run",
		"argument", arg,
		"directories", len(dirs),
		"files", len(files))

	if len(files) == 0 {
		printNoFiles(dirs)
		return
	}

	processFiles(cfg, files)
}

// processFiles runs the per-file pipeline over the given workbooks, printing
// one status line each. Failures are reported and the loop continues; they
// never become a non-zero exit.
func processFiles(cfg *config.Config, files []string) {
	sch, opts := settings(cfg)

	okMark := color.GreenString("✓")
	failMark := color.RedString("✗")

	succeeded := 0
	failed := 0
	for _, path := range files {
		name := filepath.Base(path)

		result, err := excel.FormatFile(path, sch, opts, cfg.Transform.OutputSuffix)
		if err != nil {
			logger.Error("Failed to transform workbook", "file", name, "error", err)
			fmt.Printf("%s %s 失败: %v\n", failMark, name, err)
			failed++
			continue
		}

		fmt.Printf("%s %s -> %s (%d 行)\n", okMark, name, filepath.Base(result.OutputPath), result.RowCount)
		succeeded++
	}

	logger.Info("Transform run completed",
		"success_count", succeeded,
		"error_count", failed)

	if succeeded+failed > 1 {
		fmt.Printf("\n完成: %d 成功, %d 失败\n", succeeded, failed)
	}
}

func printNoFiles(dirs []string) {
	fmt.Println("未在以下目录找到可处理的 Excel：")
	for _, d := range dirs {
		fmt.Println(" -", d)
	}
	fmt.Println("\n用法示例：")
	fmt.Println("  1) 先 cd 到含有 Excel 的目录，再运行可执行文件")
	fmt.Println("  2) 或：Excel 与可执行文件放一起运行")
	fmt.Println("  3) 或：传入目录/文件参数 -> declfmt \"/path/to/folder-or-file\"")
}

func runPick(cfg *config.Config, arg string) {
	dirs := excel.CandidateDirs(arg, cfg.Scan.ExtraDirs)
	files := excel.DiscoverWorkbooks(dirs, cfg.Transform.OutputSuffix)

	logger.Info("Starting pick operation", "files", len(files))

	if len(files) == 0 {
		printNoFiles(dirs)
		return
	}

	chosen, err := pick.RunPickTUI(files, cfg.UI.PerPage)
	if err != nil {
		logger.Error("Pick operation failed", "error", err)
		fmt.Printf("Error running pick tool: %v\n", err)
		os.Exit(1)
	}

	if len(chosen) == 0 {
		fmt.Println("Nothing selected.")
		return
	}

	processFiles(cfg, chosen)
}

func runDoctor(cfg *config.Config, path string) {
	sch, _ := settings(cfg)

	logger.Info("Starting doctor operation", "file", path)

	rep, err := doctor.Inspect(path, sch)
	if err != nil {
		logger.Error("Doctor operation failed", "error", err)
		fmt.Printf("Error inspecting file: %v\n", err)
		os.Exit(1)
	}

	doctor.WriteReport(os.Stdout, rep)

	if rep.HasSheet && rep.HeaderRow >= 0 {
		return
	}

	apiKey := doctor.GeminiAPIKey()
	if apiKey == "" {
		fmt.Println("\nSet GEMINI_API_KEY to get an AI reading of the mismatch.")
		return
	}

	advisor, err := doctor.NewAdvisor(apiKey, cfg.AI.Model)
	if err != nil {
		fmt.Printf("AI diagnosis unavailable: %v\n", err)
		return
	}
	defer advisor.Close()

	fmt.Println("\nAsking Gemini for a diagnosis...")
	answer, err := advisor.Diagnose(rep, sch)
	if err != nil {
		fmt.Printf("AI diagnosis failed: %v\n", err)
		return
	}
	fmt.Printf("\n%s\n", answer)
}
