package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "configs", "config.toml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}

	if cfg.Transform.SheetName != "面单" {
		t.Errorf("SheetName = %q, want 面单", cfg.Transform.SheetName)
	}
	if cfg.Transform.PriceSeparator != "space" {
		t.Errorf("PriceSeparator = %q, want space", cfg.Transform.PriceSeparator)
	}
	if cfg.Transform.OutputSuffix != "_transformed" {
		t.Errorf("OutputSuffix = %q, want _transformed", cfg.Transform.OutputSuffix)
	}
	if cfg.UI.PerPage != 15 {
		t.Errorf("PerPage = %d, want 15", cfg.UI.PerPage)
	}
	if cfg.AI.Model == "" {
		t.Error("Model should default to a Gemini model name")
	}
}

func TestLoadConfigReadsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `[scan]
extra_dirs = ["/data/waybills"]

[transform]
sheet_name = "发票"
price_separator = "slash"
output_suffix = "_out"

[ui]
per_page = 30

[ai]
model = "gemini-1.5-pro"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Scan.ExtraDirs) != 1 || cfg.Scan.ExtraDirs[0] != "/data/waybills" {
		t.Errorf("ExtraDirs = %v, want [/data/waybills]", cfg.Scan.ExtraDirs)
	}
	if cfg.Transform.SheetName != "发票" {
		t.Errorf("SheetName = %q, want 发票", cfg.Transform.SheetName)
	}
	if cfg.Transform.PriceSeparator != "slash" {
		t.Errorf("PriceSeparator = %q, want slash", cfg.Transform.PriceSeparator)
	}
	if cfg.Transform.OutputSuffix != "_out" {
		t.Errorf("OutputSuffix = %q, want _out", cfg.Transform.OutputSuffix)
	}
	if cfg.UI.PerPage != 30 {
		t.Errorf("PerPage = %d, want 30", cfg.UI.PerPage)
	}
	if cfg.AI.Model != "gemini-1.5-pro" {
		t.Errorf("Model = %q, want gemini-1.5-pro", cfg.AI.Model)
	}
}

func TestLoadConfigBackfillsMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `[transform]
sheet_name = "面单"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Transform.PriceSeparator != "space" {
		t.Errorf("PriceSeparator = %q, want space", cfg.Transform.PriceSeparator)
	}
	if cfg.Transform.OutputSuffix != "_transformed" {
		t.Errorf("OutputSuffix = %q, want _transformed", cfg.Transform.OutputSuffix)
	}
	if cfg.UI.PerPage != 15 {
		t.Errorf("PerPage = %d, want 15", cfg.UI.PerPage)
	}
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("transform = [broken"), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() error = nil, want decode failure")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	original := &Config{
		Scan:      ScanConfig{ExtraDirs: []string{"/a", "/b"}},
		Transform: TransformConfig{SheetName: "面单", PriceSeparator: "slash", OutputSuffix: "_x"},
		UI:        UIConfig{PerPage: 7},
		AI:        AIConfig{Model: "gemini-2.0-flash-exp"},
	}

	if err := SaveConfig(path, original); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if loaded.Transform != original.Transform {
		t.Errorf("Transform = %+v, want %+v", loaded.Transform, original.Transform)
	}
	if loaded.UI != original.UI {
		t.Errorf("UI = %+v, want %+v", loaded.UI, original.UI)
	}
	if len(loaded.Scan.ExtraDirs) != 2 {
		t.Errorf("ExtraDirs = %v, want two entries", loaded.Scan.ExtraDirs)
	}
}
