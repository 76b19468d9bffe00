// Package components provides render-only helpers used to compose TUI views.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/swatch/internal/tui/styles"
)

// Header renders the application header bar.
//
//	swatch > palette                     5/10
func Header(width int, breadcrumb string, right string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("swatch")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}
	if right != "" {
		right = styles.Subtitle.Render(right)
	}

	innerWidth := width - 4 // padding
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(left + strings.Repeat(" ", gap) + right)
}
