// Package report renders the end-of-run summary for processed documents.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/wtee/encorpulators/internal/corpus"
	"github.com/wtee/encorpulators/pkg/textutil"
)

const maxSourceWidth = 40

// Render produces a display-width aligned table of per-document stats,
// closed by a totals row. An empty stats slice renders an empty string.
func Render(stats []corpus.Stats) string {
	if len(stats) == 0 {
		return ""
	}

	rows := [][]string{{"Document", "Lines", "Sentences", "Words", "Bytes"}}

	var totals corpus.Stats

	for _, st := range stats {
		rows = append(rows, statsRow(st, textutil.Truncate(st.Source, maxSourceWidth)))

		totals.BodyLines += st.BodyLines
		totals.Sentences += st.Sentences
		totals.Words += st.Words
		totals.Bytes += st.Bytes
	}

	rows = append(rows, statsRow(totals, "TOTAL"))

	return renderTable(rows)
}

func statsRow(st corpus.Stats, label string) []string {
	return []string{
		label,
		strconv.Itoa(st.BodyLines),
		strconv.Itoa(st.Sentences),
		strconv.Itoa(st.Words),
		strconv.Itoa(st.Bytes),
	}
}

// renderTable lays out rows with display-width padding and a separator
// under the header. Widths use runewidth so wide runes in file names
// keep the columns aligned.
func renderTable(rows [][]string) string {
	colCount := len(rows[0])
	colWidths := make([]int, colCount)

	for _, row := range rows {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Keep the separator at least three dashes wide.
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var result []string

	for i, row := range rows {
		var sb strings.Builder

		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")
			sb.WriteString(row[j])

			if padding := colWidths[j] - runewidth.StringWidth(row[j]); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())

		if i == 0 {
			var sep strings.Builder

			sep.WriteString("|")

			for j := 0; j < colCount; j++ {
				sep.WriteString(" ")
				sep.WriteString(strings.Repeat("-", colWidths[j]))
				sep.WriteString(" |")
			}

			result = append(result, sep.String())
		}
	}

	return strings.Join(result, "\n")
}
