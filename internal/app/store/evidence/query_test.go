// internal/app/store/evidence/query_test.go
package evidencestore

import (
	"testing"

	"github.com/dalemusser/evidencehub/internal/domain/models"
)

func queryFixture() []models.EvidenceRecord {
	return []models.EvidenceRecord{
		{
			ID:          "a",
			Title:       "Hiragana Practice Sheet",
			Description: "Complete hiragana writing practice with stroke order",
			Section:     models.SectionLanguage,
			Week:        3,
			Type:        models.EvidenceTypeImage,
			Tags:        []string{"hiragana", "writing", "practice"},
		},
		{
			ID:          "b",
			Title:       "Izakaya Research Document",
			Description: "Study of izakaya culture and customs",
			Section:     models.SectionCulture,
			Week:        7,
			Type:        models.EvidenceTypeDoc,
			Tags:        []string{"izakaya", "research"},
		},
		{
			ID:          "c",
			Title:       "Speaking Session 1",
			Description: "First speaking practice recording",
			Section:     models.SectionLanguage,
			Week:        11,
			Type:        models.EvidenceTypeVideo,
			Tags:        []string{"speaking", "video"},
		},
		{
			ID:          "d",
			Title:       "JLPT Resource List",
			Description: "Curated links for exam preparation",
			Section:     models.SectionLanguage,
			Week:        13,
			Type:        models.EvidenceTypeLink,
			Tags:        []string{"jlpt", "resources"},
		},
	}
}

func ids(records []models.EvidenceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.EvidenceRecord, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got ids %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got ids %v, want %v", gotIDs, want)
		}
	}
}

func TestFilterIdentity(t *testing.T) {
	recs := queryFixture()

	for _, c := range []Criteria{
		{},
		{Section: FilterAll, Type: FilterAll},
		{Text: "", Section: "", Type: FilterAll},
	} {
		got := Filter(recs, c)
		assertIDs(t, got, "a", "b", "c", "d")
	}
}

func TestFilterTextMatchesAnyField(t *testing.T) {
	recs := queryFixture()

	cases := []struct {
		name string
		text string
		want []string
	}{
		{"title, different case", "HIRAGANA", []string{"a"}},
		{"description only", "stroke", []string{"a"}},
		{"tag only", "writing", []string{"a"}},
		{"substring across records", "practice", []string{"a", "c"}},
		{"no match", "sushi", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertIDs(t, Filter(recs, Criteria{Text: tc.text}), tc.want...)
		})
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	recs := queryFixture()

	// "practice" alone hits a and c; adding a type keeps only the image.
	assertIDs(t, Filter(recs, Criteria{Text: "practice", Type: models.EvidenceTypeImage}), "a")

	// All three predicates at once.
	got := Filter(recs, Criteria{
		Text:    "speaking",
		Section: models.SectionLanguage,
		Type:    models.EvidenceTypeVideo,
	})
	assertIDs(t, got, "c")

	// Text matches but the section does not; nothing passes.
	got = Filter(recs, Criteria{Text: "hiragana", Section: models.SectionCulture})
	assertIDs(t, got)
}

func TestFilterSectionAndType(t *testing.T) {
	recs := queryFixture()

	assertIDs(t, Filter(recs, Criteria{Section: models.SectionLanguage}), "a", "c", "d")
	assertIDs(t, Filter(recs, Criteria{Type: models.EvidenceTypeDoc}), "b")

	// Values outside the closed sets match nothing rather than erroring.
	assertIDs(t, Filter(recs, Criteria{Section: "sports"}))
	assertIDs(t, Filter(recs, Criteria{Type: "audio"}))
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	recs := queryFixture()

	got := Filter(recs, Criteria{Section: models.SectionLanguage})
	assertIDs(t, got, "a", "c", "d")

	// The result is a fresh slice; mutating it leaves the input alone.
	got[0].Title = "clobbered"
	if recs[0].Title != "Hiragana Practice Sheet" {
		t.Error("Filter result aliases its input")
	}
}

func TestFilterTextIsVerbatim(t *testing.T) {
	recs := queryFixture()

	// Surrounding whitespace is part of the needle, so this matches nothing.
	assertIDs(t, Filter(recs, Criteria{Text: " hiragana "}))
}

func TestSummarize(t *testing.T) {
	sum := Summarize(queryFixture())

	want := Summary{Total: 4, Images: 1, Videos: 1, Docs: 1, Links: 1}
	if sum != want {
		t.Fatalf("Summarize = %+v, want %+v", sum, want)
	}
	if sum.Images+sum.Videos+sum.Docs+sum.Links != sum.Total {
		t.Errorf("summary does not reconcile: %+v", sum)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if sum := Summarize(nil); sum != (Summary{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero value", sum)
	}
}

func TestSummarizeAfterFilter(t *testing.T) {
	recs := queryFixture()

	sum := Summarize(Filter(recs, Criteria{Section: models.SectionLanguage}))
	want := Summary{Total: 3, Images: 1, Videos: 1, Links: 1}
	if sum != want {
		t.Fatalf("Summarize(language) = %+v, want %+v", sum, want)
	}
}
