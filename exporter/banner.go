package exporter

import (
	"fmt"
	"io"
	"strings"
)

const (
	// SeparatorWidth is the number of '=' characters in a banner separator line.
	SeparatorWidth = 80

	// FileMarker precedes the path on a banner's path line.
	FileMarker = "📄"

	// ReadErrorMarker prefixes the placeholder written in place of unreadable content.
	ReadErrorMarker = "error reading file"
)

var separator = strings.Repeat("=", SeparatorWidth)

// WriteBanner writes the block header that precedes each exported file:
//
//	(blank line)
//	================...
//	📄 <path>
//	================...
//	(blank line)
func WriteBanner(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s %s\n%s\n\n", separator, FileMarker, path, separator)
	return err
}

// WriteReadError writes the single placeholder line used when a file's content
// could not be read or decoded.
func WriteReadError(w io.Writer, readErr error) error {
	_, err := fmt.Fprintf(w, "[%s: %v]\n", ReadErrorMarker, readErr)
	return err
}
