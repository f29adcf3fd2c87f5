package cmd

import (
	"fmt"

	"github.com/theirongolddev/guestlist/internal/cli"
	"github.com/theirongolddev/guestlist/internal/model"
	"github.com/theirongolddev/guestlist/internal/pipeline"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Per-tag status and price table",
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}
	contacts, err := applyFilters(result.Contacts)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Println("\n  No contacts found.")
		return nil
	}

	status := pipeline.Aggregate(contacts)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GUEST LIST  %s contacts", formatNumber(int64(len(contacts))))))
	fmt.Println()

	rows := make([][]string, 0, len(status.Tags)+2)
	for _, tc := range status.Tags {
		price, err := pipeline.TotalPrice(pipeline.FilterByTag(contacts, tc.Tag))
		if err != nil {
			return err
		}
		rows = append(rows, tagRow(tc.Tag, tc.Confirmed, tc.Pending, tc.Declined, price))
	}

	total, err := pipeline.TotalPrice(contacts)
	if err != nil {
		return err
	}
	rows = append(rows, []string{"---"})
	t := status.Totals
	rows = append(rows, tagRow("TOTAL", t.Confirmed, t.Pending, t.Declined, total))

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Tag",
		Headers: []string{"Tag", "Confirmed", "Pending", "Declined", "Confirmed %", "Price"},
		Rows:    rows,
	}))

	if n := len(status.Unclassified); n > 0 {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("%d tag occurrences with an unrecognized status were skipped", n)))
	}
	fmt.Println()
	return nil
}

func tagRow(tag string, confirmed, pending, declined int, price model.Money) []string {
	return []string{
		tag,
		formatNumber(int64(confirmed)),
		formatNumber(int64(pending)),
		formatNumber(int64(declined)),
		cli.FormatPercent(confirmed, confirmed+pending+declined),
		cli.FormatPrice(flagCurrency, price),
	}
}
