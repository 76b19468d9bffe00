package colour

import (
	"bytes"
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	got := Preview(RGB{R: 255}, 4)
	want := "\033[48;2;255;0;0m    \033[0m"
	if got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}
}

func TestPreviewWithText(t *testing.T) {
	got := PreviewWithText(MustParseHex("#FFFFFF"), "ab", 6)
	if !strings.Contains(got, "\033[38;2;0;0;0m") {
		t.Errorf("expected black text on white, got %q", got)
	}
	if !strings.Contains(got, "  ab  ") {
		t.Errorf("expected centred text, got %q", got)
	}
}

func TestColourEnabledNonTerminal(t *testing.T) {
	if ColourEnabled(&bytes.Buffer{}) {
		t.Error("ColourEnabled should be false for a buffer")
	}
}
