// Package config loads the xlpair command line configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xlpair-go/pkg/xlpair"
)

// Config holds all xlpair configuration.
type Config struct {
	// Directory for autosave documents
	AutosaveDir string `yaml:"autosave_dir"`

	// Load the autosave document of the first selected workbook
	Autoload bool `yaml:"autoload"`

	// Write the autosave document after every change
	Autosave bool `yaml:"autosave"`

	// Extensions listed as Excel workbooks
	ExcelExtensions []string `yaml:"excel_extensions"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// ValidLogLevels are the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats are the accepted logging.format values.
var ValidLogFormats = []string{"console", "json"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AutosaveDir:     xlpair.DefaultAutosaveDir,
		Autoload:        true,
		Autosave:        true,
		ExcelExtensions: slices.Clone(xlpair.DefaultExtensions),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Unparseable boolean values are ignored.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("XLPAIR_AUTOSAVE_DIR"); dir != "" {
		c.AutosaveDir = dir
	}
	if v := os.Getenv("XLPAIR_AUTOLOAD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Autoload = b
		}
	}
	if level := os.Getenv("XLPAIR_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.AutosaveDir == "" {
		return fmt.Errorf("autosave_dir must not be empty")
	}
	for _, ext := range c.ExcelExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid excel extension %q: must start with '.'", ext)
		}
	}
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !slices.Contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	return nil
}

// StoreOptions maps the configuration onto store options.
func (c *Config) StoreOptions(logger *zap.Logger) xlpair.Options {
	exts := make([]string, len(c.ExcelExtensions))
	for i, ext := range c.ExcelExtensions {
		exts[i] = strings.ToLower(ext)
	}
	autosave := c.Autosave
	return xlpair.Options{
		AutosaveDir: c.AutosaveDir,
		Autoload:    c.Autoload,
		Autosave:    &autosave,
		Extensions:  exts,
		Logger:      logger,
	}
}
