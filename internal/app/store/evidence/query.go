// internal/app/store/evidence/query.go
package evidencestore

import (
	"strings"

	"github.com/dalemusser/evidencehub/internal/domain/models"
)

// FilterAll is the sentinel criteria value that matches every record.
const FilterAll = "all"

// Criteria selects evidence records. All three predicates must hold for a
// record to be included (conjunctive).
//
// Text is matched as a case-insensitive substring against the title, the
// description, and each tag independently; matching ANY of the three fields
// is enough. Text is used verbatim: leading or trailing whitespace is part
// of the needle, which keeps the behavior identical for every caller.
//
// Section and Type are exact matches against their closed enumerations, with
// FilterAll (or empty) matching everything. Values outside the enumerations
// simply match zero records; Filter never fails.
type Criteria struct {
	Text    string
	Section string
	Type    string
}

// Filter returns the records matching c, preserving relative order. The
// input is never mutated; the result is a fresh slice.
func Filter(records []models.EvidenceRecord, c Criteria) []models.EvidenceRecord {
	needle := strings.ToLower(c.Text)

	out := make([]models.EvidenceRecord, 0, len(records))
	for _, rec := range records {
		if !matchesText(rec, needle) {
			continue
		}
		if !matchesAll(c.Section, rec.Section) {
			continue
		}
		if !matchesAll(c.Type, rec.Type) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesText(rec models.EvidenceRecord, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(rec.Description), needle) {
		return true
	}
	for _, tag := range rec.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchesAll(want, have string) bool {
	return want == "" || want == FilterAll || want == have
}

// Summary holds aggregate counts by evidence type.
//
// Links are counted in their own field so the totals always reconcile:
// Images + Videos + Docs + Links == Total.
type Summary struct {
	Total  int
	Images int
	Videos int
	Docs   int
	Links  int
}

// Summarize computes aggregate counts over records. Pure function, no side
// effects.
func Summarize(records []models.EvidenceRecord) Summary {
	sum := Summary{Total: len(records)}
	for _, rec := range records {
		switch rec.Type {
		case models.EvidenceTypeImage:
			sum.Images++
		case models.EvidenceTypeVideo:
			sum.Videos++
		case models.EvidenceTypeDoc:
			sum.Docs++
		case models.EvidenceTypeLink:
			sum.Links++
		}
	}
	return sum
}
