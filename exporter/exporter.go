// Package exporter concatenates the text files of a directory tree into a
// single document, each file preceded by a banner naming its path.
package exporter

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lexandro/projexport/extensions"
	"github.com/lexandro/projexport/ignore"
)

const (
	// DefaultRootDir is walked when Options.RootDir is empty.
	DefaultRootDir = "."

	// DefaultOutputFile is written when Options.OutputPath is empty.
	DefaultOutputFile = "project_export.txt"
)

// Options configures a single export run.
type Options struct {
	RootDir    string
	Extensions []string        // nil means extensions.Default; an empty non-nil slice is an error
	OutputPath string
	Matcher    *ignore.Matcher // optional extra exclusions
	Logger     *slog.Logger
}

// Result summarizes an export run.
type Result struct {
	Files    int   // blocks written
	Failed   int   // blocks whose content was replaced by a read error placeholder
	Bytes    int64 // content bytes copied, banners excluded
	Duration time.Duration
}

// Export writes the export document for options.RootDir to options.OutputPath,
// truncating any previous file. Only an inaccessible root, an output that
// cannot be created, or a failed write to the output abort the run; per-file
// read failures are recorded inline and counted in Result.Failed.
func Export(options Options) (result Result, err error) {
	start := time.Now()

	rootDir := options.RootDir
	if rootDir == "" {
		rootDir = DefaultRootDir
	}
	outputPath := options.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputFile
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	suffixes := options.Extensions
	if suffixes == nil {
		suffixes = extensions.Default
	}
	allowList, err := extensions.New(suffixes...)
	if err != nil {
		return result, err
	}

	rootDir, err = resolveRoot(rootDir)
	if err != nil {
		return result, err
	}

	f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return result, fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", closeErr)
		}
	}()

	outputInfo, err := f.Stat()
	if err != nil {
		return result, fmt.Errorf("stat output file: %w", err)
	}

	logger.Info("export started",
		"root", rootDir,
		"output", outputPath,
		"extensions", allowList.String(),
	)

	exp := New(rootDir, allowList, options.Matcher, logger)
	exp.skip = outputInfo

	buffered := bufio.NewWriter(f)
	result, err = exp.Stream(buffered)
	if flushErr := buffered.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("writing output file: %w", flushErr)
	}
	result.Duration = time.Since(start)
	if err != nil {
		return result, err
	}

	logger.Info("export complete",
		"files", result.Files,
		"failed", result.Failed,
		"bytes", result.Bytes,
		"duration", result.Duration,
	)
	return result, nil
}

// resolveRoot checks that rootDir is a readable directory.
// A symlinked root is followed, matching how its contents are listed.
func resolveRoot(rootDir string) (string, error) {
	info, err := os.Lstat(rootDir)
	if err != nil {
		return "", fmt.Errorf("opening root directory: %w", err)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		info, err = os.Stat(rootDir)
		if err != nil {
			return "", fmt.Errorf("opening root directory: %w", err)
		}
		rootDir += string(filepath.Separator)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("root %s is not a directory", rootDir)
	}
	return rootDir, nil
}
