// Package report renders the tag status report as plain text.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/guestlist/internal/model"
	"github.com/theirongolddev/guestlist/internal/pipeline"
)

var (
	// ErrSummation wraps any failure of the price summer.
	ErrSummation = errors.New("price summation failed")
	// ErrUnclassifiableStatus is returned in strict mode when a tagged
	// contact has a status that does not parse.
	ErrUnclassifiableStatus = errors.New("unclassifiable status")
)

// Options controls report generation.
type Options struct {
	// Strict fails the report on unclassifiable statuses instead of
	// skipping those occurrences.
	Strict bool
}

// Result is a generated report together with the pass that produced it.
type Result struct {
	Text   string
	Status model.StatusReport
}

// Generate builds the report text for contacts. Prices come from summer,
// once for all contacts and once per distinct tag. Any summer error fails
// the whole report.
func Generate(contacts []model.Contact, summer pipeline.PriceSummer, opts Options) (Result, error) {
	status := pipeline.Aggregate(contacts)
	if opts.Strict && len(status.Unclassified) > 0 {
		u := status.Unclassified[0]
		return Result{}, fmt.Errorf("%w: %q for %s (tag %s)", ErrUnclassifiableStatus, u.Status, u.Contact, u.Tag)
	}

	overall, err := summer.SumPrices(contacts, "")
	if err != nil {
		return Result{}, fmt.Errorf("%w: all contacts: %w", ErrSummation, err)
	}

	var byTag strings.Builder
	for _, tag := range pipeline.CollectTags(contacts) {
		line, err := summer.SumPrices(contacts, tag)
		if err != nil {
			return Result{}, fmt.Errorf("%w: tag %s: %w", ErrSummation, tag, err)
		}
		byTag.WriteString(line)
		byTag.WriteString("\n")
	}

	text := RenderStatus(status) + fmt.Sprintf("\n%s\n%s", overall, byTag.String())
	return Result{Text: text, Status: status}, nil
}

// RenderStatus renders the status section: header, global totals, and one
// line per tag in first-seen order.
func RenderStatus(r model.StatusReport) string {
	var b strings.Builder
	b.WriteString("Current status for tags: \n")
	b.WriteString(renderCounts(r.Totals.Confirmed, r.Totals.Pending, r.Totals.Declined))
	b.WriteString("\n")
	for _, tc := range r.Tags {
		b.WriteString(RenderCounter(tc))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderCounter renders one tag's line, e.g. "friends: 2 confirmed, 1 pending, 0 declined".
func RenderCounter(tc model.TagCounter) string {
	return tc.Tag + ": " + renderCounts(tc.Confirmed, tc.Pending, tc.Declined)
}

func renderCounts(confirmed, pending, declined int) string {
	return fmt.Sprintf("%d confirmed, %d pending, %d declined", confirmed, pending, declined)
}
