package input

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 64KB, enough for a page of pasted notes.
	DefaultMaxInputSize = 64 * 1024
	// EnvMaxInputSize overrides DefaultMaxInputSize with a positive byte count.
	EnvMaxInputSize = "NOTEQUIZ_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Sanitize prepares note text for the backend. Oversized or malformed input
// is rejected as a whole. Line endings are normalised to "\n" and control
// characters other than newline and tab are dropped, so pasted terminal
// escapes never reach the summary.
func Sanitize(text string) (string, error) {
	if limit := MaxInputSize(); len(text) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(text), limit)
	}
	if !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}
	return strings.Map(keepNoteRune, lineEndings.Replace(text)), nil
}

// keepNoteRune is a strings.Map callback; -1 drops the rune.
func keepNoteRune(r rune) rune {
	if r == '\n' || r == '\t' || !unicode.IsControl(r) {
		return r
	}
	return -1
}

// MaxInputSize returns the configured limit in bytes.
func MaxInputSize() int {
	if size, err := strconv.Atoi(os.Getenv(EnvMaxInputSize)); err == nil && size > 0 {
		return size
	}
	return DefaultMaxInputSize
}
