// internal/domain/models/timeline.go
package models

import "strings"

// Program week bounds. Week numbers on evidence records and timeline entries
// always fall inside this range.
const (
	MinWeek = 1
	MaxWeek = 17
)

// WeekEntry describes one week of the 17-week Guided-Learning timeline.
type WeekEntry struct {
	Week        int      `json:"week"`
	Label       string   `json:"label"`
	Bucket      string   `json:"bucket"` // see bucket constants below
	Actions     []string `json:"actions"`
	Deliverable string   `json:"deliverable"`
}

// BucketAll is the filter sentinel that matches every bucket. It is never a
// valid bucket on a WeekEntry itself.
const BucketAll = "all"

// Canonical timeline bucket identifiers.
const (
	BucketLanguage  = "language"
	BucketCulture   = "culture"
	BucketAdmin     = "admin"
	BucketMilestone = "milestone"
)

// Buckets is the full set of allowed timeline bucket identifiers.
var Buckets = []string{
	BucketLanguage,
	BucketCulture,
	BucketAdmin,
	BucketMilestone,
}

// IsValidBucket reports whether b is a member of the closed bucket set.
func IsValidBucket(b string) bool {
	for _, v := range Buckets {
		if b == v {
			return true
		}
	}
	return false
}

// Milestone marks a fixed checkpoint on the program timeline.
type Milestone struct {
	Week  int    `json:"week"`
	Label string `json:"label"`
}

// StudyResource is an external tool or text consulted during the program
// (apps, textbooks, podcasts). Detail holds long-form notes shown in the
// resource's detail view; Images are paths to session screenshots.
type StudyResource struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"` // e.g. "App", "Textbook", "Podcast"
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
	Detail      string   `json:"detail,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// Paragraphs splits the long-form Detail text into paragraphs on blank
// lines, for templates that render each in its own element.
func (r StudyResource) Paragraphs() []string {
	var out []string
	for _, p := range strings.Split(r.Detail, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Reference is a cited external source with a stable display name.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
