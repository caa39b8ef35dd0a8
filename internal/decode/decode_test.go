package decode

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"strict", "ignore"} {
		mode, err := ParseMode(valid)
		if err != nil {
			t.Errorf("ParseMode(%q) returned error: %v", valid, err)
		}

		if string(mode) != valid {
			t.Errorf("ParseMode(%q) = %q", valid, mode)
		}
	}

	if _, err := ParseMode("replace"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(replace) error = %v, want ErrUnknownMode", err)
	}
}

func TestNewReader_StrictPassesValidText(t *testing.T) {
	in := "Produced by Jane Doe — café, naïve, 世界\n"

	out, err := io.ReadAll(NewReader(strings.NewReader(in), Strict))
	if err != nil {
		t.Fatalf("Strict reader failed on valid UTF-8: %v", err)
	}

	if string(out) != in {
		t.Errorf("Strict reader altered valid text: %q", out)
	}
}

func TestNewReader_StrictFailsOnIllFormedBytes(t *testing.T) {
	in := "good text \xfe\xff bad bytes"

	if _, err := io.ReadAll(NewReader(strings.NewReader(in), Strict)); err == nil {
		t.Error("Expected error from strict reader on ill-formed bytes")
	}
}

func TestNewReader_IgnoreDropsIllFormedBytes(t *testing.T) {
	in := "caf\xffe au lait"

	out, err := io.ReadAll(NewReader(strings.NewReader(in), Ignore))
	if err != nil {
		t.Fatalf("Ignore reader failed: %v", err)
	}

	if string(out) != "cafe au lait" {
		t.Errorf("Ignore reader output = %q, want %q", out, "cafe au lait")
	}
}

func TestNewReader_IgnorePassesValidText(t *testing.T) {
	in := "perfectly fine text"

	out, err := io.ReadAll(NewReader(strings.NewReader(in), Ignore))
	if err != nil {
		t.Fatalf("Ignore reader failed: %v", err)
	}

	if string(out) != in {
		t.Errorf("Ignore reader altered valid text: %q", out)
	}
}
