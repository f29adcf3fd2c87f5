// Package tui provides the interactive Bubble Tea report window for guestlist.
package tui

import (
	"strings"

	"github.com/theirongolddev/guestlist/internal/tui/components"
	"github.com/theirongolddev/guestlist/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 3 // title, rule, blank
	footerHeight = 1
)

// Viewer is a scrollable window over a finished report. It only displays
// text; the report is generated before the window opens.
type Viewer struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	width    int
}

// NewViewer creates a report window for content.
func NewViewer(title, content string) Viewer {
	return Viewer{title: title, content: content}
}

// Init implements tea.Model.
func (v Viewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}

	case tea.WindowSizeMsg:
		v.width = msg.Width
		h := msg.Height - headerHeight - footerHeight
		if h < 1 {
			h = 1
		}
		if !v.ready {
			v.viewport = viewport.New(msg.Width, h)
			v.viewport.SetContent(v.styledContent())
			v.ready = true
		} else {
			v.viewport.Width = msg.Width
			v.viewport.Height = h
		}
	}

	if !v.ready {
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements tea.Model.
func (v Viewer) View() string {
	if !v.ready {
		return "\n  Loading report..."
	}

	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Border)

	var b strings.Builder
	b.WriteString(titleStyle.Render("  " + v.title))
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", v.width)))
	b.WriteString("\n\n")
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(v.width, v.viewport.ScrollPercent()))
	return b.String()
}

// styledContent colors the status counts of each report line.
func (v Viewer) styledContent() string {
	t := theme.Active
	green := lipgloss.NewStyle().Foreground(t.Green)
	orange := lipgloss.NewStyle().Foreground(t.Orange)
	red := lipgloss.NewStyle().Foreground(t.Red)
	text := lipgloss.NewStyle().Foreground(t.TextPrimary)

	lines := strings.Split(v.content, "\n")
	for i, line := range lines {
		if !strings.HasSuffix(line, " declined") {
			lines[i] = text.Render(line)
			continue
		}
		line = colorCount(line, " confirmed", green)
		line = colorCount(line, " pending", orange)
		line = colorCount(line, " declined", red)
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// colorCount styles the number preceding word in line.
func colorCount(line, word string, style lipgloss.Style) string {
	end := strings.LastIndex(line, word)
	if end < 0 {
		return line
	}
	start := end
	for start > 0 && line[start-1] >= '0' && line[start-1] <= '9' {
		start--
	}
	if start == end {
		return line
	}
	return line[:start] + style.Render(line[start:end]) + line[end:]
}
