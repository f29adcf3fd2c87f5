package cmd

import (
	"fmt"

	"github.com/theirongolddev/guestlist/internal/pipeline"
	"github.com/theirongolddev/guestlist/internal/store"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import an address book into the contact database",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := flagFile
	if len(args) == 1 {
		path = args[0]
	}

	st, err := store.Open(flagDB)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	result, err := pipeline.Import(path, st)
	if err != nil {
		return err
	}

	fmt.Printf("  Imported %s contacts from %s\n", formatNumber(int64(len(result.Contacts))), path)
	if result.ParseErrors > 0 {
		fmt.Printf("  %d persons without a name were skipped\n", result.ParseErrors)
	}
	fmt.Printf("  Database: %s\n", flagDB)
	return nil
}
