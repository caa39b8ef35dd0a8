package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppend_SeparatesDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")

	if err := Append(path, "First document sentence."); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := Append(path, "Second document sentence.\n"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read corpus: %v", err)
	}

	want := "First document sentence.\nSecond document sentence.\n"
	if string(got) != want {
		t.Errorf("Corpus = %q, want %q", got, want)
	}
}

func TestAppend_EmptyDocumentWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")

	if err := Append(path, ""); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// A fully-filtered document is a valid terminal state; the corpus
	// file is not even created for it.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no corpus file for empty append, stat err = %v", err)
	}
}

func TestAppend_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "corpus.txt")

	if err := Append(path, "Some output text."); err == nil {
		t.Error("Expected error appending under missing directory")
	}
}

func TestCount(t *testing.T) {
	text := "The quick brown fox jumped.\nIt ran far away home."

	st := Count("book.txt", text)

	if st.Source != "book.txt" {
		t.Errorf("Source = %q, want book.txt", st.Source)
	}

	if st.Sentences != 2 {
		t.Errorf("Sentences = %d, want 2", st.Sentences)
	}

	if st.Words != 10 {
		t.Errorf("Words = %d, want 10", st.Words)
	}

	if st.Bytes != len(text) {
		t.Errorf("Bytes = %d, want %d", st.Bytes, len(text))
	}
}

func TestCount_EmptyText(t *testing.T) {
	st := Count("book.txt", "")

	if st.Sentences != 0 || st.Words != 0 || st.Bytes != 0 {
		t.Errorf("Empty text counted: %+v", st)
	}
}

func TestCount_PunctuationIsNotAWord(t *testing.T) {
	st := Count("book.txt", `"Stop!" cried the watchman.`)

	if st.Words != 4 {
		t.Errorf("Words = %d, want 4", st.Words)
	}
}
