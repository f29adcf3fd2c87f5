package model

// TagCounter holds the status tally for one tag.
type TagCounter struct {
	Tag       string
	Confirmed int
	Pending   int
	Declined  int
}

// StatusTotals holds the status tally across every tag occurrence of a pass.
type StatusTotals struct {
	Confirmed int
	Pending   int
	Declined  int
}

// Unclassified records a tag occurrence skipped because its status did not parse.
type Unclassified struct {
	Contact string
	Tag     string
	Status  string
}

// StatusReport is the result of one aggregation pass.
type StatusReport struct {
	Totals       StatusTotals
	Tags         []TagCounter // first-seen order
	Unclassified []Unclassified
}

// Tag returns the counter for tag, if the pass saw it.
func (r StatusReport) Tag(tag string) (TagCounter, bool) {
	for _, tc := range r.Tags {
		if tc.Tag == tag {
			return tc, true
		}
	}
	return TagCounter{}, false
}
