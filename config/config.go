// Package config holds the exporter's configuration surface: named defaults,
// an optional YAML file, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lexandro/projexport/exporter"
	"github.com/lexandro/projexport/extensions"
)

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = ".projexport.yaml"

// Config represents exporter configuration options
type Config struct {
	// Root is the directory to walk
	Root string `yaml:"root"`

	// Output is the export document path, truncated on every run
	Output string `yaml:"output"`

	// Extensions is the case-sensitive suffix allow-list
	Extensions []string `yaml:"extensions"`

	// Exclude holds doublestar patterns left out of the export
	Exclude []string `yaml:"exclude"`

	// UseIgnoreFiles honors .gitignore and .exportignore in Root
	UseIgnoreFiles bool `yaml:"use_ignore_files"`

	// SkipDefaultDirs prunes VCS, dependency and cache directories
	SkipDefaultDirs bool `yaml:"skip_default_dirs"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	exts := make([]string, len(extensions.Default))
	copy(exts, extensions.Default)

	return &Config{
		Root:       exporter.DefaultRootDir,
		Output:     exporter.DefaultOutputFile,
		Extensions: exts,
		LogLevel:   "info",
	}
}

// Load reads a YAML config file and merges it over the defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from an explicit empty value.
	var fileCfg struct {
		Root            string    `yaml:"root"`
		Output          string    `yaml:"output"`
		Extensions      *[]string `yaml:"extensions"`
		Exclude         []string  `yaml:"exclude"`
		UseIgnoreFiles  *bool     `yaml:"use_ignore_files"`
		SkipDefaultDirs *bool     `yaml:"skip_default_dirs"`
		LogLevel        string    `yaml:"log_level"`
	}
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fileCfg.Root != "" {
		cfg.Root = fileCfg.Root
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	if fileCfg.Extensions != nil {
		cfg.Extensions = *fileCfg.Extensions
	}
	if len(fileCfg.Exclude) > 0 {
		cfg.Exclude = fileCfg.Exclude
	}
	if fileCfg.UseIgnoreFiles != nil {
		cfg.UseIgnoreFiles = *fileCfg.UseIgnoreFiles
	}
	if fileCfg.SkipDefaultDirs != nil {
		cfg.SkipDefaultDirs = *fileCfg.SkipDefaultDirs
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(fileCfg.LogLevel)
	}

	return cfg, nil
}

// Validate checks the configuration for values the exporter cannot run with.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root cannot be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}
	if _, err := extensions.New(c.Extensions...); err != nil {
		return fmt.Errorf("invalid extensions: %w", err)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	return nil
}
