package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexandro/projexport/config"
	"github.com/lexandro/projexport/exporter"
	"github.com/lexandro/projexport/ignore"
)

const defaultConfigHint = config.DefaultFileName + " if present"

// runExport resolves the effective configuration and performs one export.
func runExport(cmd *cobra.Command, args []string, flags rootFlags) error {
	cfg, err := resolveConfig(cmd, args, flags)
	if err != nil {
		return err
	}

	logger, closeLog := setupLogger(cfg.LogLevel, flags.logFile, cmd.ErrOrStderr())
	defer closeLog()

	matcher, err := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:         cfg.Root,
		CustomPatterns:  cfg.Exclude,
		UseIgnoreFiles:  cfg.UseIgnoreFiles,
		SkipDefaultDirs: cfg.SkipDefaultDirs,
	})
	if err != nil {
		return err
	}

	result, err := exporter.Export(exporter.Options{
		RootDir:    cfg.Root,
		Extensions: cfg.Extensions,
		OutputPath: cfg.Output,
		Matcher:    matcher,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("export failed", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files (%s) to %s", result.Files, formatSize(result.Bytes), cfg.Output)
	if result.Failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d unreadable)", result.Failed)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// resolveConfig layers flags over the config file over the defaults.
func resolveConfig(cmd *cobra.Command, args []string, flags rootFlags) (*config.Config, error) {
	configPath := flags.configPath
	if configPath == "" {
		configPath = config.DefaultFileName
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		cfg.Root = args[0]
	}
	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.Output = flags.output
	}
	if changed("ext") {
		cfg.Extensions = flags.extensions
	}
	if changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, flags.excludes...)
	}
	if changed("ignore-files") {
		cfg.UseIgnoreFiles = flags.useIgnoreFiles
	}
	if changed("skip-default-dirs") {
		cfg.SkipDefaultDirs = flags.skipDefaultDirs
	}
	if changed("log-level") {
		cfg.LogLevel = strings.ToLower(flags.logLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// formatSize converts bytes to a human-readable string.
func formatSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
