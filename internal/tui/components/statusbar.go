// Package components holds small rendering pieces of the report window.
package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/guestlist/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar with key hints and scroll position.
func RenderStatusBar(width int, scrollPercent float64) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [↑/↓]scroll  [q]uit"
	right := fmt.Sprintf("%3.0f%% ", scrollPercent*100)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
