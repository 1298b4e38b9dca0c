package config

import (
	"fmt"
	"os"
	"path/filepath"

	"declFmt/internal/logger"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Scan      ScanConfig      `toml:"scan"`
	Transform TransformConfig `toml:"transform"`
	UI        UIConfig        `toml:"ui"`
	AI        AIConfig        `toml:"ai"`
}

type ScanConfig struct {
	// ExtraDirs are appended after the standard candidates
	// (argument, working directory, executable directory).
	ExtraDirs []string `toml:"extra_dirs"`
}

type TransformConfig struct {
	SheetName      string `toml:"sheet_name"`
	PriceSeparator string `toml:"price_separator"`
	OutputSuffix   string `toml:"output_suffix"`
}

type UIConfig struct {
	PerPage int `toml:"per_page"`
}

type AIConfig struct {
	Model string `toml:"model"`
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create configs directory if it doesn't exist
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %v", err)
		}

		// Create default config file
		defaultConfig := &Config{
			Scan: ScanConfig{
				ExtraDirs: []string{},
			},
			Transform: TransformConfig{
				SheetName:      "面单",
				PriceSeparator: "space",
				OutputSuffix:   "_transformed",
			},
			UI: UIConfig{
				PerPage: 15,
			},
			AI: AIConfig{
				Model: "gemini-2.0-flash-exp",
			},
		}

		err = SaveConfig(configPath, defaultConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create default config: %v", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	// Load existing config
	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %v", configPath, err)
	}

	// Set defaults if missing
	if config.Transform.SheetName == "" {
		config.Transform.SheetName = "面单"
	}
	if config.Transform.PriceSeparator == "" {
		config.Transform.PriceSeparator = "space"
	}
	if config.Transform.OutputSuffix == "" {
		config.Transform.OutputSuffix = "_transformed"
	}
	if config.UI.PerPage == 0 {
		config.UI.PerPage = 15
	}
	if config.AI.Model == "" {
		config.AI.Model = "gemini-2.0-flash-exp"
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
