package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/guestlist/internal/config"
	"github.com/theirongolddev/guestlist/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	next, dataFile := setupSeed(cfg)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Address book file").
				Description("JSON file with a top-level \"persons\" list.").
				Value(&dataFile),
			huh.NewConfirm().
				Title("Keep a SQLite copy for faster reports?").
				Value(&next.General.UseStore),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Value(&next.Report.Currency),
			huh.NewConfirm().
				Title("Fail on unrecognized statuses?").
				Description("Otherwise they are skipped with a warning.").
				Value(&next.Report.Strict),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&next.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	next.General.DataFile = strings.TrimSpace(dataFile)
	if strings.TrimSpace(next.Report.Currency) == "" {
		next.Report.Currency = "$"
	}

	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `guestlist setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

// setupSeed returns the config the form edits and the data file it starts
// with. Flag fallbacks are not seeded so they never end up in the file.
func setupSeed(c config.Config) (config.Config, string) {
	return c, config.GetDataFile(c)
}
