package corpus

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// Stats summarizes one document's contribution to the corpus.
type Stats struct {
	// Source is the document's file name.
	Source string
	// BodyLines is how many raw lines survived boilerplate stripping.
	BodyLines int
	// Sentences is how many admitted sentences were produced.
	Sentences int
	// Words is the number of word tokens across those sentences.
	Words int
	// Bytes is the size of the normalized output.
	Bytes int
}

// Count measures the normalized output for one document. Words are
// UAX #29 segments containing at least one letter or digit, so
// punctuation runs are not counted.
func Count(source, text string) Stats {
	st := Stats{
		Source: source,
		Bytes:  len(text),
	}

	if text == "" {
		return st
	}

	st.Sentences = strings.Count(text, "\n") + 1

	tokens := words.FromString(text)
	for tokens.Next() {
		if wordLike(tokens.Value()) {
			st.Words++
		}
	}

	return st
}

func wordLike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
