// Package stripper removes Project Gutenberg boilerplate from raw
// e-book text, leaving only the transcribed narrative body.
package stripper

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/wtee/encorpulators/internal/decode"
)

// Markers defined by the Project Gutenberg document format.
const (
	// creditsMarker opens the production-credit block that ends the
	// legal preamble.
	creditsMarker = "Produced by"
	// endMarker and endMarkerAlt open the trailing license; nothing
	// after them is narrative text.
	endMarker    = "End of Project Gutenberg"
	endMarkerAlt = "End of the Project Gutenberg EBook"
)

// Phase is the scanner's position within the document structure.
type Phase int

const (
	// PhasePreamble covers the legal header before the production credits.
	PhasePreamble Phase = iota
	// PhaseCredits covers the production-credit block, up to the next
	// blank line.
	PhaseCredits
	// PhaseBody covers the transcribed narrative text.
	PhaseBody
	// PhaseDone is reached at the trailing license; scanning stops.
	PhaseDone
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhasePreamble:
		return "preamble"
	case PhaseCredits:
		return "credits"
	case PhaseBody:
		return "body"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// ScanState tracks one document's progress through the stripper.
// InsideBracket is independent of Phase and only meaningful in PhaseBody,
// where it marks an open multi-line bracketed note. A fresh zero value
// is used per document; nothing is shared between documents.
type ScanState struct {
	Phase         Phase
	InsideBracket bool
}

// Stripper filters a raw line stream down to narrative body lines.
type Stripper struct {
	pageNumLine  *regexp.Regexp
	badFirstChar *regexp.Regexp
}

// NewStripper creates a stripper with its line heuristics compiled.
func NewStripper() *Stripper {
	return &Stripper{
		// Index and table-of-contents lines trail off into a page number.
		pageNumLine: regexp.MustCompile(`^.+ [0-9]+\.?`),
		// Narrative lines open with a letter or quoted speech. ASCII
		// classes match the transcription conventions of the source texts.
		badFirstChar: regexp.MustCompile(`^[^A-Za-z"]`),
	}
}

// Strip reads one document and returns its surviving body lines in
// order. Decode failures surface only under decode.Strict; under
// decode.Ignore ill-formed bytes are dropped before line scanning.
func (s *Stripper) Strip(r io.Reader, mode decode.Mode) ([]string, error) {
	scanner := bufio.NewScanner(decode.NewReader(r, mode))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		state ScanState
		body  []string
	)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if s.Step(&state, line) {
			body = append(body, line)
		}

		if state.Phase == PhaseDone {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	return body, nil
}

// Step advances the scanner by one line and reports whether the line
// belongs to the narrative body. Transitions follow document order:
// preamble -> credits -> body -> done.
func (s *Stripper) Step(state *ScanState, line string) bool {
	switch state.Phase {
	case PhasePreamble:
		// Everything up to the production credits is legal boilerplate.
		if strings.HasPrefix(line, creditsMarker) {
			state.Phase = PhaseCredits
		}

		return false

	case PhaseCredits:
		// The credit block ends at the first blank line.
		if line == "" {
			state.Phase = PhaseBody
		}

		return false

	case PhaseDone:
		return false
	}

	// PhaseBody from here on.
	if strings.HasPrefix(line, endMarker) || strings.HasPrefix(line, endMarkerAlt) {
		state.Phase = PhaseDone

		return false
	}

	if state.InsideBracket {
		// Discard until the note closes; the closing line goes too.
		if strings.Contains(line, "]") {
			state.InsideBracket = false
		}

		return false
	}

	if strings.HasPrefix(line, "[") {
		// Bracketed notes are editorial, and often title-cased, so the
		// whole note is discarded. Without a closing bracket on the same
		// line the note spans multiple lines.
		if !strings.Contains(line, "]") {
			state.InsideBracket = true
		}

		return false
	}

	if line == "" ||
		s.badFirstChar.MatchString(line) ||
		line == strings.ToUpper(line) ||
		s.pageNumLine.MatchString(line) {
		return false
	}

	return true
}
