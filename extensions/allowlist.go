package extensions

import (
	"errors"
	"fmt"
	"strings"
)

// Default is the allow-list used when nothing else is configured.
// Source code, markup, styles, data and plain text.
var Default = []string{
	".py",
	".html",
	".css",
	".js",
	".md",
	".json",
	".txt",
}

// ErrEmptyAllowList is returned when an allow-list would match nothing.
var ErrEmptyAllowList = errors.New("extension allow-list is empty")

// AllowList decides which file names are eligible for export.
// Matching is a case-sensitive suffix match on the file name, so ".md" does
// not match "README.MD" and "tar.gz" style entries work as written.
type AllowList struct {
	suffixes []string
}

// New creates an AllowList from the given suffixes.
// Duplicates are collapsed; order is preserved for String().
func New(suffixes ...string) (AllowList, error) {
	if len(suffixes) == 0 {
		return AllowList{}, ErrEmptyAllowList
	}

	seen := make(map[string]bool, len(suffixes))
	list := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		if suffix == "" {
			return AllowList{}, fmt.Errorf("empty extension in allow-list %q", suffixes)
		}
		if seen[suffix] {
			continue
		}
		seen[suffix] = true
		list = append(list, suffix)
	}

	return AllowList{suffixes: list}, nil
}

// MustNew is like New but panics on error. Intended for package-level defaults.
func MustNew(suffixes ...string) AllowList {
	list, err := New(suffixes...)
	if err != nil {
		panic(err)
	}
	return list
}

// Matches reports whether name ends with any suffix in the list.
// Pass a base name; directories in the path are not considered.
func (a AllowList) Matches(name string) bool {
	for _, suffix := range a.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Suffixes returns a copy of the configured suffixes.
func (a AllowList) Suffixes() []string {
	out := make([]string, len(a.suffixes))
	copy(out, a.suffixes)
	return out
}

func (a AllowList) String() string {
	return strings.Join(a.suffixes, ",")
}
