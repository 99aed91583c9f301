package extensions

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Encoding is the declared encoding for both reading inputs and writing the
// export document.
const Encoding = "utf-8"

// ErrInvalidEncoding is returned by DecodeText for content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid " + Encoding + " content")

// DecodeText checks that data is valid UTF-8 and returns it as a string.
// The error carries the byte offset of the first invalid sequence.
// A leading byte order mark is kept as-is.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return "", fmt.Errorf("%w: invalid byte 0x%02x at offset %d", ErrInvalidEncoding, data[offset], offset)
}
