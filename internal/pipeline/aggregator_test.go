package pipeline

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/theirongolddev/guestlist/internal/model"
)

func TestAggregate_MultipleTagsOneContact(t *testing.T) {
	contacts := []model.Contact{
		{Name: "A", Status: "Confirmed", Tags: []string{"volunteer", "staff"}},
	}

	r := Aggregate(contacts)

	for _, tag := range []string{"volunteer", "staff"} {
		tc, ok := r.Tag(tag)
		if !ok {
			t.Fatalf("missing counter for %q", tag)
		}
		if tc.Confirmed != 1 || tc.Pending != 0 || tc.Declined != 0 {
			t.Errorf("%s = %+v, want 1/0/0", tag, tc)
		}
	}
	// One increment per (tag, status) occurrence.
	if r.Totals != (model.StatusTotals{Confirmed: 2}) {
		t.Errorf("Totals = %+v, want 2 confirmed", r.Totals)
	}
}

func TestAggregate_AbbreviationMatchesFullWord(t *testing.T) {
	contacts := []model.Contact{
		{Name: "A", Status: "c", Tags: []string{"A"}},
		{Name: "B", Status: "Confirmed", Tags: []string{"A"}},
	}

	r := Aggregate(contacts)
	tc, _ := r.Tag("A")
	if tc.Confirmed != 2 {
		t.Errorf("Confirmed = %d, want 2", tc.Confirmed)
	}
	if len(r.Tags) != 1 {
		t.Errorf("len(Tags) = %d, want 1", len(r.Tags))
	}
}

func TestAggregate_Empty(t *testing.T) {
	r := Aggregate(nil)
	if r.Totals != (model.StatusTotals{}) {
		t.Errorf("Totals = %+v, want zero", r.Totals)
	}
	if len(r.Tags) != 0 || len(r.Unclassified) != 0 {
		t.Errorf("expected empty report, got %+v", r)
	}
}

func TestAggregate_UnclassifiedStatusSkipped(t *testing.T) {
	contacts := []model.Contact{
		{Name: "A", Status: "maybe", Tags: []string{"x", "y"}},
		{Name: "B", Status: "p", Tags: []string{"y"}},
	}

	r := Aggregate(contacts)

	if r.Totals != (model.StatusTotals{Pending: 1}) {
		t.Errorf("Totals = %+v, want 1 pending", r.Totals)
	}
	if _, ok := r.Tag("x"); ok {
		t.Error("tag x should have no counter, its only occurrence was unclassified")
	}
	if len(r.Unclassified) != 2 {
		t.Fatalf("len(Unclassified) = %d, want 2", len(r.Unclassified))
	}
	want := model.Unclassified{Contact: "A", Tag: "x", Status: "maybe"}
	if r.Unclassified[0] != want {
		t.Errorf("Unclassified[0] = %+v, want %+v", r.Unclassified[0], want)
	}
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	contacts := []model.Contact{
		{Name: "A", Status: "d", Tags: []string{"zeta"}},
		{Name: "B", Status: "p", Tags: []string{"alpha", "zeta"}},
		{Name: "C", Status: "c", Tags: []string{"mid"}},
	}

	r := Aggregate(contacts)

	var got []string
	for _, tc := range r.Tags {
		got = append(got, tc.Tag)
	}
	want := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestAggregate_ContactWithoutTagsNotCounted(t *testing.T) {
	r := Aggregate([]model.Contact{{Name: "A", Status: "c"}})
	if r.Totals != (model.StatusTotals{}) {
		t.Errorf("Totals = %+v, want zero", r.Totals)
	}
}

func TestCollectTags(t *testing.T) {
	contacts := []model.Contact{
		{Name: "A", Tags: []string{"X"}},
		{Name: "B", Tags: []string{"X", "Y"}},
		{Name: "C"},
	}
	got := CollectTags(contacts)
	want := []string{"X", "Y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectTags = %v, want %v", got, want)
	}
}

func TestFilterByTag(t *testing.T) {
	contacts := []model.Contact{
		{Name: "A", Tags: []string{"friends"}},
		{Name: "B", Tags: []string{"Friends"}},
		{Name: "C", Tags: []string{"colleagues", "friends"}},
	}

	got := FilterByTag(contacts, "friends")
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("FilterByTag = %+v, want A and C", got)
	}
	if all := FilterByTag(contacts, ""); len(all) != 3 {
		t.Errorf("empty tag should keep all, got %d", len(all))
	}
}

func TestFilterByStatus(t *testing.T) {
	contacts := []model.Contact{
		{Name: "A", Status: "c"},
		{Name: "B", Status: "Pending"},
		{Name: "C", Status: "CONFIRMED"},
		{Name: "D", Status: "maybe"},
	}

	got := FilterByStatus(contacts, model.StatusConfirmed)
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Errorf("FilterByStatus = %+v, want A and C", got)
	}
	if all := FilterByStatus(contacts, model.StatusUnknown); len(all) != 4 {
		t.Errorf("StatusUnknown should keep all, got %d", len(all))
	}
}

func genContacts() gopter.Gen {
	genContact := gen.Struct(reflect.TypeOf(model.Contact{}), map[string]gopter.Gen{
		"Name":   gen.AlphaString(),
		"Status": gen.OneConstOf("c", "Confirmed", "p", "PENDING", "d", "declined", "maybe", ""),
		"Tags":   gen.SliceOf(gen.OneConstOf("friends", "staff", "volunteer", "family", "vip")),
	})
	return gen.SliceOf(genContact)
}

// For any contact list, each status column summed over all tag counters
// equals the matching global total.
func TestProperty_ColumnSumsMatchTotals(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("column sums equal totals", prop.ForAll(
		func(contacts []model.Contact) bool {
			r := Aggregate(contacts)
			var sum model.StatusTotals
			for _, tc := range r.Tags {
				sum.Confirmed += tc.Confirmed
				sum.Pending += tc.Pending
				sum.Declined += tc.Declined
			}
			return sum == r.Totals
		},
		genContacts(),
	))

	properties.TestingRun(t)
}

// Aggregating the same input twice yields identical results, so nothing
// leaks from one pass into the next.
func TestProperty_Deterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("repeat pass is identical", prop.ForAll(
		func(contacts []model.Contact) bool {
			first := Aggregate(contacts)
			second := Aggregate(contacts)
			return reflect.DeepEqual(first, second)
		},
		genContacts(),
	))

	properties.Property("every occurrence counted or unclassified", prop.ForAll(
		func(contacts []model.Contact) bool {
			occurrences := 0
			for _, c := range contacts {
				occurrences += len(c.Tags)
			}
			r := Aggregate(contacts)
			counted := r.Totals.Confirmed + r.Totals.Pending + r.Totals.Declined
			return counted+len(r.Unclassified) == occurrences
		},
		genContacts(),
	))

	properties.TestingRun(t)
}

func BenchmarkAggregate(b *testing.B) {
	tags := []string{"friends", "staff", "volunteer", "family", "vip"}
	statuses := []string{"c", "p", "d"}
	contacts := make([]model.Contact, 1000)
	for i := range contacts {
		contacts[i] = model.Contact{
			Name:   "contact",
			Status: statuses[i%len(statuses)],
			Tags:   tags[:1+i%len(tags)],
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Aggregate(contacts)
	}
}
