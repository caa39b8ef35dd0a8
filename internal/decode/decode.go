// Package decode applies the caller-chosen error-tolerance policy while
// reading source text.
package decode

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Mode selects how ill-formed UTF-8 in the input is handled.
type Mode string

const (
	// Strict fails the document on the first ill-formed byte sequence.
	Strict Mode = "strict"
	// Ignore silently drops ill-formed byte sequences.
	Ignore Mode = "ignore"
)

// ErrUnknownMode is returned for mode strings other than strict or ignore.
var ErrUnknownMode = errors.New("unknown decode mode")

// ParseMode converts a flag or config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Strict, Ignore:
		return Mode(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// NewReader wraps r so that reads enforce the given mode. Under Strict
// the reader fails with encoding.ErrInvalidUTF8 at the first ill-formed
// sequence; under Ignore ill-formed bytes are removed from the stream,
// one replacement rune at a time.
func NewReader(r io.Reader, mode Mode) io.Reader {
	if mode == Ignore {
		dropIllFormed := runes.Remove(runes.Predicate(func(r rune) bool {
			return r == utf8.RuneError
		}))

		return transform.NewReader(r, dropIllFormed)
	}

	return transform.NewReader(r, encoding.UTF8Validator)
}
