package cmd

import (
	"fmt"

	"github.com/theirongolddev/guestlist/internal/tui"
	"github.com/theirongolddev/guestlist/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the report in a scrollable window",
	RunE:  runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(_ *cobra.Command, _ []string) error {
	res, err := buildReport()
	if err != nil {
		return err
	}

	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so theme colors render inside the alt screen
	lipgloss.SetColorProfile(termenv.TrueColor)

	p := tea.NewProgram(tui.NewViewer("STATUS REPORT", res.Text), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("report window: %w", err)
	}
	return nil
}
