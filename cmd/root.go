// Package cmd implements the guestlist CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/guestlist/internal/cli"
	"github.com/theirongolddev/guestlist/internal/config"
	"github.com/theirongolddev/guestlist/internal/model"
	"github.com/theirongolddev/guestlist/internal/pipeline"
	"github.com/theirongolddev/guestlist/internal/source"
	"github.com/theirongolddev/guestlist/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagFile     string
	flagDB       string
	flagNoStore  bool
	flagTag      string
	flagStatus   string
	flagStrict   bool
	flagCurrency string
	flagQuiet    bool
)

// cfg is loaded once before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "guestlist",
	Short: "Contact status and price reports",
	Long:  "Summarize confirmed, pending, and declined contacts per tag, with price totals.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		applyConfigDefaults(cmd)
		return nil
	},
	RunE:         runReport,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Address book JSON file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Contact database path")
	rootCmd.PersistentFlags().BoolVar(&flagNoStore, "no-store", false, "Skip the SQLite store, parse the file every time")
	rootCmd.PersistentFlags().StringVarP(&flagTag, "tag", "t", "", "Only include contacts with this tag")
	rootCmd.PersistentFlags().StringVarP(&flagStatus, "status", "s", "", "Only include contacts with this status (c/p/d)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Fail on statuses that are not confirmed, pending, or declined")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency symbol for price totals")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// applyConfigDefaults fills flags the user did not set from config.
func applyConfigDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("file") {
		flagFile = config.GetDataFile(cfg)
		if flagFile == "" {
			flagFile = source.DefaultPath
		}
	}
	if !flags.Changed("db") {
		flagDB = cfg.General.DBPath
		if flagDB == "" {
			flagDB = pipeline.StorePath()
		}
	}
	if !flags.Changed("no-store") {
		flagNoStore = !cfg.General.UseStore
	}
	if !flags.Changed("strict") {
		flagStrict = cfg.Report.Strict
	}
	if !flags.Changed("currency") {
		flagCurrency = cfg.Report.Currency
	}
}

// loadData is the shared contact loading path used by all commands.
// Uses the SQLite store when available so unchanged files are not reparsed.
func loadData() (*pipeline.LoadResult, error) {
	if !flagNoStore {
		st, err := store.Open(flagDB)
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Store unavailable, reading %s directly\n", flagFile)
			}
		} else {
			defer func() { _ = st.Close() }()

			result, err := pipeline.LoadWithStore(flagFile, st)
			if err == nil {
				if !flagQuiet && !result.FromStore {
					fmt.Fprintf(os.Stderr, "  Imported %s contacts from %s\n",
						formatNumber(int64(len(result.Contacts))), flagFile)
				}
				warnParseErrors(result)
				return result, nil
			}
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Store error (%v), falling back to %s\n", err, flagFile)
			}
		}
	}

	result, err := pipeline.Load(flagFile)
	if err != nil {
		return nil, err
	}
	warnParseErrors(result)
	return result, nil
}

func warnParseErrors(result *pipeline.LoadResult) {
	if !flagQuiet && result.ParseErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d persons without a name were skipped\n", result.ParseErrors)
	}
}

// applyFilters narrows contacts by the --tag and --status flags.
func applyFilters(contacts []model.Contact) ([]model.Contact, error) {
	filtered := pipeline.FilterByTag(contacts, flagTag)
	if flagStatus != "" {
		status, err := model.ParseStatus(flagStatus)
		if err != nil {
			return nil, fmt.Errorf("--status: %w", err)
		}
		filtered = pipeline.FilterByStatus(filtered, status)
	}
	return filtered, nil
}

func formatNumber(n int64) string {
	return cli.FormatNumber(n)
}
