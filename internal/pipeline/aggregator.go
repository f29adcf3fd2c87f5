// Package pipeline orchestrates contact loading, filtering, and status aggregation.
package pipeline

import (
	"sort"

	"github.com/theirongolddev/guestlist/internal/model"
)

// tally is the mutable state of one aggregation pass. It never outlives the
// Aggregate call that created it.
type tally struct {
	report model.StatusReport
	index  map[string]int // tag -> position in report.Tags
}

func (t *tally) reset() {
	t.report = model.StatusReport{}
	t.index = make(map[string]int)
}

// record counts one (tag, status) occurrence. A status that does not parse
// leaves every counter untouched and is remembered as unclassified.
func (t *tally) record(c model.Contact, tag string) {
	status, err := model.ParseStatus(c.Status)
	if err != nil {
		t.report.Unclassified = append(t.report.Unclassified, model.Unclassified{
			Contact: c.Name,
			Tag:     tag,
			Status:  c.Status,
		})
		return
	}

	idx, ok := t.index[tag]
	if !ok {
		idx = len(t.report.Tags)
		t.index[tag] = idx
		t.report.Tags = append(t.report.Tags, model.TagCounter{Tag: tag})
	}
	tc := &t.report.Tags[idx]

	switch status {
	case model.StatusConfirmed:
		tc.Confirmed++
		t.report.Totals.Confirmed++
	case model.StatusPending:
		tc.Pending++
		t.report.Totals.Pending++
	case model.StatusDeclined:
		tc.Declined++
		t.report.Totals.Declined++
	}
}

// Aggregate computes per-tag status counts and global totals in a single
// pass. Tags appear in the order they are first seen: contacts in input
// order, and each contact's tags in stored order. Contacts without tags
// contribute nothing.
func Aggregate(contacts []model.Contact) model.StatusReport {
	var t tally
	t.reset()
	for _, c := range contacts {
		for _, tag := range c.Tags {
			t.record(c, tag)
		}
	}
	return t.report
}

// CollectTags returns every distinct tag across contacts, sorted ascending.
func CollectTags(contacts []model.Contact) []string {
	seen := make(map[string]struct{})
	for _, c := range contacts {
		for _, tag := range c.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FilterByTag returns contacts carrying the tag. An empty tag matches all.
func FilterByTag(contacts []model.Contact, tag string) []model.Contact {
	if tag == "" {
		return contacts
	}
	var result []model.Contact
	for _, c := range contacts {
		if c.HasTag(tag) {
			result = append(result, c)
		}
	}
	return result
}

// FilterByStatus returns contacts whose stored status classifies as status.
func FilterByStatus(contacts []model.Contact, status model.Status) []model.Contact {
	if status == model.StatusUnknown {
		return contacts
	}
	var result []model.Contact
	for _, c := range contacts {
		if s, err := model.ParseStatus(c.Status); err == nil && s == status {
			result = append(result, c)
		}
	}
	return result
}
