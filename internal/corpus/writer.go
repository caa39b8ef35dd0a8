// Package corpus appends normalized documents to the training corpus
// and measures what each document contributed.
package corpus

import (
	"fmt"
	"os"
	"strings"
)

// Append opens the corpus file in append mode, writes one document's
// normalized output, and closes it again. The file is not held open
// across documents, and the corpus is never read back. A document that
// normalized to nothing appends nothing.
func Append(path, text string) error {
	if text == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open corpus file: %w", err)
	}

	// Keep the one-sentence-per-line shape across document boundaries.
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()

		return fmt.Errorf("failed to append to corpus: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close corpus file: %w", err)
	}

	return nil
}
