package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/guestlist/internal/cli"
	"github.com/theirongolddev/guestlist/internal/pipeline"
	"github.com/theirongolddev/guestlist/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Status counts per tag with price totals",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// buildReport loads, filters, and renders the report text shared by
// report and view.
func buildReport() (report.Result, error) {
	result, err := loadData()
	if err != nil {
		return report.Result{}, err
	}

	filtered, err := applyFilters(result.Contacts)
	if err != nil {
		return report.Result{}, err
	}

	res, err := report.Generate(filtered,
		pipeline.PriceTotaller{Currency: flagCurrency},
		report.Options{Strict: flagStrict},
	)
	if err != nil {
		return report.Result{}, err
	}

	if !flagQuiet {
		for _, u := range res.Status.Unclassified {
			fmt.Fprintln(os.Stderr, cli.RenderWarning(
				fmt.Sprintf("%s (tag %s): status %q not counted", u.Contact, u.Tag, u.Status)))
		}
	}
	return res, nil
}

func runReport(_ *cobra.Command, _ []string) error {
	res, err := buildReport()
	if err != nil {
		return err
	}
	fmt.Print(res.Text)
	return nil
}
