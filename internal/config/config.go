// =============================================================================
// JSON to TOON Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the main application configuration.
// The configuration file is optional: when it does not exist, built-in
// defaults apply and the tool works with zero setup.
//
// CONFIGURATION FILE (config.yaml):
//   input_dir:  ./input_json     # where input JSON files are placed
//   output_dir: ./output_toon    # where generated TOON files are placed
//   log_level:  info             # debug, info, warn, error
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// Both directories are resolved relative to the working directory at
// invocation time.
type MainConfig struct {
	// InputDir is the directory where input JSON files are placed.
	// The application scans this directory (non-recursively) for files
	// to process.
	// Default: "input_json"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated TOON files are placed.
	// Default: "output_toon"
	OutputDir string `yaml:"output_dir"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the main configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file exists but cannot be read or parsed.
//
// A missing file is not an error; the built-in defaults are returned so the
// tool can run without any configuration present.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			applyMainConfigDefaults(&config)
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "input_json"
	}
	if config.OutputDir == "" {
		config.OutputDir = "output_toon"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}
