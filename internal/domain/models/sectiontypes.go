// internal/domain/models/sectiontypes.go
package models

// Canonical curriculum section identifiers.
//
// A section is the curriculum category an evidence record belongs to. It
// drives visual grouping and accent colors in the gallery, not catalog
// behavior. Human-facing labels are provided by SectionLabel.
const (
	SectionIntro       = "intro"
	SectionLanguage    = "language"
	SectionCulture     = "culture"
	SectionReflection  = "reflection"
	SectionDeliverable = "deliverable"
)

// Sections is the full set of allowed section identifiers.
//
// This slice should be treated as the single source of truth for validation.
var Sections = []string{
	SectionIntro,
	SectionLanguage,
	SectionCulture,
	SectionReflection,
	SectionDeliverable,
}

// DefaultSection is used when no specific section is provided.
const DefaultSection = SectionLanguage

// IsValidSection reports whether s is a member of the closed section set.
func IsValidSection(s string) bool {
	for _, v := range Sections {
		if s == v {
			return true
		}
	}
	return false
}

// sectionLabels maps section identifiers to display labels.
var sectionLabels = map[string]string{
	SectionIntro:       "Introduction",
	SectionLanguage:    "Language",
	SectionCulture:     "Culture",
	SectionReflection:  "Reflection",
	SectionDeliverable: "Deliverable",
}

// SectionLabel returns the display label for a section identifier, or the
// identifier itself for unknown values.
func SectionLabel(s string) string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return s
}
