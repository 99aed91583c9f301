package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootFlags holds the raw command-line values before they are merged over the config file.
type rootFlags struct {
	configPath      string
	output          string
	extensions      []string
	excludes        []string
	useIgnoreFiles  bool
	skipDefaultDirs bool
	logLevel        string
	logFile         string
}

// newRootCmd creates the projexport command.
func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "projexport [root]",
		Short: "Concatenate a project's text files into one export document",
		Long: `projexport walks a directory tree and writes every file whose name ends
with an allow-listed extension into a single text document, each one preceded
by a banner with its path.

Files that cannot be read are recorded inline and do not stop the export.

Examples:
  projexport                              # export . to project_export.txt
  projexport ./site -o site.txt           # export ./site
  projexport --ext .go --ext .md          # only Go and Markdown
  projexport --skip-default-dirs --ignore-files --exclude "**/*.test.js"`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML config file (default: "+defaultConfigHint+")")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file, overwritten on every run (default: project_export.txt)")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "Allowed file name suffix, case-sensitive (repeatable or comma-separated)")
	cmd.Flags().StringArrayVar(&flags.excludes, "exclude", nil, "Doublestar pattern to leave out (repeatable)")
	cmd.Flags().BoolVar(&flags.useIgnoreFiles, "ignore-files", false, "Honor .gitignore and .exportignore in the root")
	cmd.Flags().BoolVar(&flags.skipDefaultDirs, "skip-default-dirs", false, "Skip VCS, dependency and cache directories")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug|info|warn|error (default: info)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Log file path (default: stderr)")

	return cmd
}

// setupLogger creates an slog.Logger writing to stderr or a file.
// The returned close function releases the log file, if any.
func setupLogger(level string, logFile string, stderr io.Writer) (*slog.Logger, func()) {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	writer := stderr
	closeFn := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
		} else {
			writer = f
			closeFn = func() { f.Close() }
		}
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler), closeFn
}
