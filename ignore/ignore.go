package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher determines whether a path should be left out of the export.
// It combines the default directory list, ignore files in the root, and
// custom doublestar patterns. A nil *Matcher ignores nothing.
type Matcher struct {
	rootDir         string
	ignoreFiles     []gitignore.GitIgnore
	customPatterns  []string
	skipDefaultDirs bool
}

// MatcherOptions configures the ignore matcher.
type MatcherOptions struct {
	RootDir         string
	CustomPatterns  []string // doublestar globs, matched against the root-relative path and the base name
	UseIgnoreFiles  bool     // honor .gitignore and .exportignore in RootDir
	SkipDefaultDirs bool     // prune DefaultIgnoreDirs
}

// NewMatcher creates an ignore matcher. It fails on malformed custom patterns.
func NewMatcher(options MatcherOptions) (*Matcher, error) {
	for _, pattern := range options.CustomPatterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	matcher := &Matcher{
		rootDir:         options.RootDir,
		customPatterns:  options.CustomPatterns,
		skipDefaultDirs: options.SkipDefaultDirs,
	}

	if options.UseIgnoreFiles {
		for _, name := range IgnoreFileNames {
			if gi := loadIgnoreFile(filepath.Join(options.RootDir, name), options.RootDir); gi != nil {
				matcher.ignoreFiles = append(matcher.ignoreFiles, gi)
			}
		}
	}

	return matcher, nil
}

// Empty reports whether the matcher can never ignore anything.
func (m *Matcher) Empty() bool {
	return m == nil || (len(m.ignoreFiles) == 0 && len(m.customPatterns) == 0 && !m.skipDefaultDirs)
}

// ShouldIgnore returns true if the given path should be excluded from the export.
// The path is either absolute or as produced by walking RootDir.
func (m *Matcher) ShouldIgnore(path string, isDir bool) bool {
	if m.Empty() {
		return false
	}

	relativePath := m.relative(path)
	if relativePath == "." {
		return false
	}

	for _, gi := range m.ignoreFiles {
		match := gi.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	return m.matchesCustomPatterns(relativePath)
}

// ShouldIgnoreDir returns true if a directory should be skipped entirely during traversal.
func (m *Matcher) ShouldIgnoreDir(path string) bool {
	if m.Empty() {
		return false
	}

	if m.skipDefaultDirs {
		dirName := strings.ToLower(filepath.Base(path))
		for _, name := range DefaultIgnoreDirs {
			if dirName == name {
				return true
			}
		}
	}

	return m.ShouldIgnore(path, true)
}

// relative returns path relative to the root with forward slashes.
func (m *Matcher) relative(path string) string {
	relativePath, err := filepath.Rel(m.rootDir, path)
	if err != nil {
		relativePath = path
	}
	return filepath.ToSlash(relativePath)
}

// matchesCustomPatterns checks the path and its base name against the user's exclude patterns.
func (m *Matcher) matchesCustomPatterns(relativePath string) bool {
	baseName := filepath.Base(relativePath)
	for _, pattern := range m.customPatterns {
		if doublestar.MatchUnvalidated(pattern, relativePath) {
			return true
		}
		if doublestar.MatchUnvalidated(pattern, baseName) {
			return true
		}
	}
	return false
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// Returns nil when the file does not exist or cannot be opened.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
