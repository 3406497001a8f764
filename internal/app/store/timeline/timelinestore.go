// internal/app/store/timeline/timelinestore.go
package timelinestore

import (
	"fmt"
	"sort"

	"github.com/dalemusser/evidencehub/internal/domain/models"
)

// Store holds the fixed weekly plan and its milestones. The plan is compiled
// in and never changes at runtime, so reads need no locking.
type Store struct {
	weeks      []models.WeekEntry
	milestones []models.Milestone
}

// New validates the plan data and returns a read-only store. Weeks must be
// unique, in range, sorted ascending, and carry a recognized bucket; every
// milestone must point at an existing week.
func New(weeks []models.WeekEntry, milestones []models.Milestone) (*Store, error) {
	seen := make(map[int]struct{}, len(weeks))
	for i, w := range weeks {
		if w.Week < models.MinWeek || w.Week > models.MaxWeek {
			return nil, fmt.Errorf("week entry %d: week %d out of range", i, w.Week)
		}
		if !models.IsValidBucket(w.Bucket) {
			return nil, fmt.Errorf("week entry %d: unknown bucket %q", i, w.Bucket)
		}
		if _, dup := seen[w.Week]; dup {
			return nil, fmt.Errorf("week entry %d: duplicate week %d", i, w.Week)
		}
		seen[w.Week] = struct{}{}
	}
	if !sort.SliceIsSorted(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week }) {
		return nil, fmt.Errorf("week entries are not in ascending order")
	}
	for i, m := range milestones {
		if _, ok := seen[m.Week]; !ok {
			return nil, fmt.Errorf("milestone %d (%q): no week entry for week %d", i, m.Label, m.Week)
		}
	}

	s := &Store{
		weeks:      make([]models.WeekEntry, len(weeks)),
		milestones: make([]models.Milestone, len(milestones)),
	}
	copy(s.weeks, weeks)
	copy(s.milestones, milestones)
	return s, nil
}

// Weeks returns the full plan in week order.
func (s *Store) Weeks() []models.WeekEntry {
	out := make([]models.WeekEntry, len(s.weeks))
	copy(out, s.weeks)
	return out
}

// WeeksByBucket returns only the weeks in the given bucket, keeping week
// order. An empty bucket or BucketAll returns everything.
func (s *Store) WeeksByBucket(bucket string) []models.WeekEntry {
	if bucket == "" || bucket == models.BucketAll {
		return s.Weeks()
	}
	out := make([]models.WeekEntry, 0, len(s.weeks))
	for _, w := range s.weeks {
		if w.Bucket == bucket {
			out = append(out, w)
		}
	}
	return out
}

// Week returns the plan entry for the given week number.
func (s *Store) Week(n int) (models.WeekEntry, bool) {
	for _, w := range s.weeks {
		if w.Week == n {
			return w, true
		}
	}
	return models.WeekEntry{}, false
}

// Milestones returns the program milestones in week order.
func (s *Store) Milestones() []models.Milestone {
	out := make([]models.Milestone, len(s.milestones))
	copy(out, s.milestones)
	return out
}

// Progress summarizes where the program stands as of the given current week.
type Progress struct {
	CurrentWeek int
	TotalWeeks  int
	Percent     int
	WeeksLeft   int
}

// ProgressAt clamps current into program range and computes the headline
// progress numbers shown on the plan page.
func (s *Store) ProgressAt(current int) Progress {
	if current < models.MinWeek {
		current = models.MinWeek
	}
	if current > models.MaxWeek {
		current = models.MaxWeek
	}
	total := len(s.weeks)
	return Progress{
		CurrentWeek: current,
		TotalWeeks:  total,
		Percent:     current * 100 / models.MaxWeek,
		WeeksLeft:   models.MaxWeek - current,
	}
}
