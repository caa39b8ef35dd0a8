// Package textutil provides small string helpers shared by the corpus pipeline.
package textutil

import (
	"strings"
	"unicode"
)

// AllUpper reports whether s is identical to its own upper-casing.
// A string with no letters at all (digits, punctuation) is trivially all-upper.
func AllUpper(s string) bool {
	return s == strings.ToUpper(s)
}

// TitleToken lowercases a token and capitalizes its first letter.
func TitleToken(s string) string {
	runes := []rune(strings.ToLower(s))

	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)

			break
		}
	}

	return string(runes)
}

// Truncate shortens s to at most maxLength runes, marking the cut with an ellipsis.
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength]) + "..."
}
