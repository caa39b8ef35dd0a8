// Package normalizer reflows stripped body lines into clean,
// one-per-line training sentences with repaired token casing.
package normalizer

import (
	"strings"
	"unicode/utf8"

	"github.com/wtee/encorpulators/pkg/textutil"
)

// DefaultMinSentenceLength is the admission filter's length floor.
// Shorter fragments are almost always segmentation artifacts.
const DefaultMinSentenceLength = 20

// Normalizer rebuilds sentences from print-width line fragments.
// Gutenberg line breaks follow the printed page, not sentence
// boundaries, so the lines are flattened and re-split before the
// per-token case repair runs.
type Normalizer struct {
	minLength int
}

// NewNormalizer creates a normalizer with the given admission minimum.
// Values below 1 fall back to DefaultMinSentenceLength.
func NewNormalizer(minLength int) *Normalizer {
	if minLength < 1 {
		minLength = DefaultMinSentenceLength
	}

	return &Normalizer{minLength: minLength}
}

// Normalize converts body lines into admitted, case-repaired sentences
// joined by newlines. It is pure: no I/O, no state across calls.
func (n *Normalizer) Normalize(lines []string) string {
	// Underscores mark italics in some transcriptions and carry no
	// case information.
	text := strings.ReplaceAll(strings.Join(lines, " "), "_", "")

	var fixed []string

	for _, sentence := range segment(text) {
		if !n.admit(sentence) {
			continue
		}

		fixed = append(fixed, repairCase(sentence))
	}

	return strings.Join(fixed, "\n")
}

// segment splits flattened text at sentence boundaries: terminal
// punctuation, an optional closing double-quote, a single space, and a
// following character that is not a lowercase letter. A lowercase
// continuation ('"Wait!" he proclaimed.') stays inside the current
// sentence, as does a mid-abbreviation period. Characters accumulate
// into the current buffer until a boundary seals it; the final buffer
// is sealed even without terminal punctuation.
func segment(text string) []string {
	var (
		sentences []string
		buf       strings.Builder
	)

	i := 0
	for i < len(text) {
		c := text[i]
		buf.WriteByte(c)

		if c != '.' && c != '!' && c != '?' {
			i++

			continue
		}

		j := i + 1
		if j < len(text) && text[j] == '"' {
			buf.WriteByte('"')
			j++
		}

		if j+1 < len(text) && text[j] == ' ' && !isLowerASCII(text[j+1]) {
			sentences = append(sentences, buf.String())
			buf.Reset()

			// The next sentence begins after the separating space.
			i = j + 1

			continue
		}

		i = j
	}

	if last := strings.TrimSpace(buf.String()); last != "" {
		sentences = append(sentences, last)
	}

	return sentences
}

// admit gates re-segmented sentences: too-short or lowercase-initial
// fragments are artifacts, not sentences. ASCII uppercase matches the
// source texts' orthography.
func (n *Normalizer) admit(sentence string) bool {
	if utf8.RuneCountInString(sentence) < n.minLength {
		return false
	}

	return sentence[0] >= 'A' && sentence[0] <= 'Z'
}

// repairCase rewrites bare all-caps tokens, which transcriptions use
// for emphasis and drop-caps: the sentence-initial token becomes title
// case, any other becomes lowercase. Tokens containing a lowercase
// letter pass through untouched. The decision keys off the token's
// position, so a repeated all-caps word is handled correctly at every
// occurrence.
func repairCase(sentence string) string {
	tokens := strings.Fields(sentence)

	for i, tok := range tokens {
		if !textutil.AllUpper(tok) {
			continue
		}

		if i == 0 {
			tokens[i] = textutil.TitleToken(tok)
		} else {
			tokens[i] = strings.ToLower(tok)
		}
	}

	return strings.Join(tokens, " ")
}

func isLowerASCII(c byte) bool {
	return c >= 'a' && c <= 'z'
}
