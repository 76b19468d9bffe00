// Package styles holds the colours and lipgloss styles shared by the swatch TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/swatch/internal/colour"
)

var (
	White   = lipgloss.Color("#E2E2E2")
	Gray    = lipgloss.Color("#888888")
	Muted   = lipgloss.Color("#555555")
	DimGray = lipgloss.Color("#444444")

	Blue   = lipgloss.Color("#5FAFFF")
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// MutedText is for help text and hints.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// KeyStyle renders the key in a footer binding.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// KeyDescStyle renders the description in a footer binding.
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Gray)

	// KeySepStyle separates footer bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding renders "key desc" for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}

// LevelStyle returns the style used for a contrast tier badge.
func LevelStyle(l colour.Level) lipgloss.Style {
	switch l {
	case colour.LevelAAA:
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case colour.LevelAA:
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Red)
	}
}

// LevelBadge is the display text for a contrast tier.
func LevelBadge(l colour.Level) string {
	if l.Passes() {
		return l.String() + " ✓"
	}
	return "✗ " + l.String()
}
