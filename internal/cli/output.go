package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jmylchreest/swatch/internal/colour"
)

var (
	okMark   = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnMark = color.New(color.FgYellow, color.Bold).SprintFunc()
	dim      = color.New(color.Faint).SprintFunc()
)

// success prints a "✓ ..." status line unless --quiet is set.
func (a *app) success(w io.Writer, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(w, "%s %s\n", okMark("✓"), fmt.Sprintf(format, args...))
}

// warn prints a "⚠ ..." line. Warnings are shown even with --quiet.
func (a *app) warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", warnMark("⚠"), fmt.Sprintf(format, args...))
}

// levelText colours a contrast tier for terminal output.
func levelText(l colour.Level) string {
	switch l {
	case colour.LevelAAA:
		return color.New(color.FgGreen, color.Bold).Sprint(l.String())
	case colour.LevelAA:
		return color.New(color.FgYellow, color.Bold).Sprint(l.String())
	default:
		return color.New(color.FgRed).Sprint(l.String())
	}
}

// swatchCell renders a small colour block, or "" when w is not a colour terminal.
func swatchCell(w io.Writer, hex colour.Hex) string {
	if !colour.ColourEnabled(w) {
		return ""
	}
	rgb, err := colour.ParseHex(string(hex))
	if err != nil {
		return ""
	}
	return colour.Preview(rgb, 6)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
