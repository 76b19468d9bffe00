package colour

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput forces plain output regardless of the terminal.
var DisableColourOutput = false

// ColourEnabled reports whether ANSI colour should be written to w.
// Colour is only used for terminals, and NO_COLOR (via fatih/color) wins.
func ColourEnabled(w io.Writer) bool {
	if DisableColourOutput || color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// Preview returns an ANSI-coloured solid block for a colour.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bg(c) + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour block with text centred on it.
// The text is black or white, whichever has the higher contrast.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg(c) + fg(ReadableText(c)) + displayText + ansiReset
}

// FormatWithPreview formats a colour as its preview block followed by the hex code.
func FormatWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", Preview(rgb, width), rgb.Hex())
}

func bg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fg(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
