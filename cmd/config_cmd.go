package cmd

import (
	"fmt"

	"github.com/theirongolddev/guestlist/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Address book: %s\n", flagFile)
	fmt.Printf("    Use store:    %v\n", cfg.General.UseStore)
	fmt.Printf("    Database:     %s\n", flagDB)
	fmt.Println()

	fmt.Println("  [Report]")
	fmt.Printf("    Strict statuses: %v\n", cfg.Report.Strict)
	fmt.Printf("    Currency:        %s\n", cfg.Report.Currency)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `guestlist setup` to reconfigure.")
	return nil
}
