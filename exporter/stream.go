package exporter

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lexandro/projexport/extensions"
	"github.com/lexandro/projexport/ignore"
)

// Exporter walks one root directory and streams matching files into a writer.
type Exporter struct {
	rootDir   string
	allowList extensions.AllowList
	matcher   *ignore.Matcher
	logger    *slog.Logger
	skip      os.FileInfo // never exported, set to the output file by Export
}

// New creates an Exporter. matcher may be nil.
func New(rootDir string, allowList extensions.AllowList, matcher *ignore.Matcher, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Exporter{
		rootDir:   rootDir,
		allowList: allowList,
		matcher:   matcher,
		logger:    logger,
	}
}

// Stream writes one banner+content block per matching file to w, in the
// lexical order filepath.WalkDir visits them. A failure to list the root or to
// write to w is returned; anything else is logged or written inline.
func (e *Exporter) Stream(w io.Writer) (Result, error) {
	var result Result

	err := filepath.WalkDir(e.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == e.rootDir {
				return fmt.Errorf("walking root directory: %w", err)
			}
			e.logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != e.rootDir && e.matcher.ShouldIgnoreDir(path) {
				e.logger.Debug("skipped directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !e.allowList.Matches(d.Name()) {
			return nil
		}
		if e.matcher.ShouldIgnore(path, false) {
			e.logger.Debug("skipped file", "path", path)
			return nil
		}
		if e.isSymlinkToDir(path, d) || e.isSkipped(path) {
			return nil
		}

		return e.exportFile(w, path, &result)
	})

	return result, err
}

// exportFile writes the banner for path followed by its content or a read error placeholder.
func (e *Exporter) exportFile(w io.Writer, path string, result *Result) error {
	if err := WriteBanner(w, path); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	result.Files++

	text, err := readText(path)
	if err != nil {
		result.Failed++
		e.logger.Warn("could not read file", "path", path, "error", err)
		if err := WriteReadError(w, err); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	n, err := io.WriteString(w, text)
	result.Bytes += int64(n)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	e.logger.Debug("exported file", "path", path, "bytes", n)
	return nil
}

// readText reads a whole file and decodes it with the declared encoding.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extensions.DecodeText(data)
}

// isSymlinkToDir reports whether d is a symlink resolving to a directory.
// WalkDir does not descend into those, and they have no text to export.
func (e *Exporter) isSymlinkToDir(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isSkipped reports whether path is the same file as e.skip.
func (e *Exporter) isSkipped(path string) bool {
	if e.skip == nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && os.SameFile(info, e.skip)
}
