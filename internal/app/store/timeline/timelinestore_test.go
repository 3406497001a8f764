// internal/app/store/timeline/timelinestore_test.go
package timelinestore

import (
	"strings"
	"testing"

	"github.com/dalemusser/evidencehub/internal/domain/models"
)

func newSeedStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(SeedWeeks(), SeedMilestones())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestSeedPlanIsComplete(t *testing.T) {
	s := newSeedStore(t)

	weeks := s.Weeks()
	if len(weeks) != models.MaxWeek {
		t.Fatalf("plan has %d weeks, want %d", len(weeks), models.MaxWeek)
	}
	for i, w := range weeks {
		if w.Week != i+1 {
			t.Errorf("weeks[%d].Week = %d, want %d", i, w.Week, i+1)
		}
		if w.Label == "" || w.Deliverable == "" || len(w.Actions) == 0 {
			t.Errorf("week %d is missing label, deliverable, or actions", w.Week)
		}
	}

	if got := len(s.Milestones()); got != 3 {
		t.Errorf("got %d milestones, want 3", got)
	}
}

func TestNewRejectsBadPlans(t *testing.T) {
	cases := []struct {
		name       string
		weeks      []models.WeekEntry
		milestones []models.Milestone
		wantErr    string
	}{
		{
			name: "week out of range",
			weeks: []models.WeekEntry{
				{Week: 0, Label: "x", Bucket: models.BucketAdmin},
			},
			wantErr: "out of range",
		},
		{
			name: "unknown bucket",
			weeks: []models.WeekEntry{
				{Week: 1, Label: "x", Bucket: "vacation"},
			},
			wantErr: "unknown bucket",
		},
		{
			name: "duplicate week",
			weeks: []models.WeekEntry{
				{Week: 1, Label: "x", Bucket: models.BucketAdmin},
				{Week: 1, Label: "y", Bucket: models.BucketAdmin},
			},
			wantErr: "duplicate week",
		},
		{
			name: "unsorted",
			weeks: []models.WeekEntry{
				{Week: 2, Label: "x", Bucket: models.BucketAdmin},
				{Week: 1, Label: "y", Bucket: models.BucketAdmin},
			},
			wantErr: "ascending",
		},
		{
			name: "milestone without week",
			weeks: []models.WeekEntry{
				{Week: 1, Label: "x", Bucket: models.BucketAdmin},
			},
			milestones: []models.Milestone{{Week: 9, Label: "nope"}},
			wantErr:    "no week entry",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.weeks, tc.milestones)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("New = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestWeeksByBucket(t *testing.T) {
	s := newSeedStore(t)

	for _, sentinel := range []string{"", models.BucketAll} {
		if got := len(s.WeeksByBucket(sentinel)); got != models.MaxWeek {
			t.Errorf("WeeksByBucket(%q) = %d weeks, want %d", sentinel, got, models.MaxWeek)
		}
	}

	lang := s.WeeksByBucket(models.BucketLanguage)
	if len(lang) != 7 {
		t.Fatalf("language bucket has %d weeks, want 7", len(lang))
	}
	prev := 0
	for _, w := range lang {
		if w.Bucket != models.BucketLanguage {
			t.Errorf("week %d leaked into language bucket with bucket %q", w.Week, w.Bucket)
		}
		if w.Week <= prev {
			t.Errorf("bucket filter broke week order at week %d", w.Week)
		}
		prev = w.Week
	}

	if got := len(s.WeeksByBucket(models.BucketMilestone)); got != 2 {
		t.Errorf("milestone bucket has %d weeks, want 2", got)
	}
	if got := len(s.WeeksByBucket("vacation")); got != 0 {
		t.Errorf("unknown bucket matched %d weeks, want 0", got)
	}
}

func TestWeekLookup(t *testing.T) {
	s := newSeedStore(t)

	w, ok := s.Week(8)
	if !ok {
		t.Fatal("Week(8) not found")
	}
	if w.Label != "Mid-Semester Review" || w.Bucket != models.BucketMilestone {
		t.Errorf("Week(8) = %+v", w)
	}
	if _, ok := s.Week(99); ok {
		t.Error("Week(99) unexpectedly found")
	}
}

func TestProgressAt(t *testing.T) {
	s := newSeedStore(t)

	cases := []struct {
		current int
		want    Progress
	}{
		{16, Progress{CurrentWeek: 16, TotalWeeks: 17, Percent: 94, WeeksLeft: 1}},
		{17, Progress{CurrentWeek: 17, TotalWeeks: 17, Percent: 100, WeeksLeft: 0}},
		{1, Progress{CurrentWeek: 1, TotalWeeks: 17, Percent: 5, WeeksLeft: 16}},
		// Out-of-range values clamp rather than error.
		{0, Progress{CurrentWeek: 1, TotalWeeks: 17, Percent: 5, WeeksLeft: 16}},
		{40, Progress{CurrentWeek: 17, TotalWeeks: 17, Percent: 100, WeeksLeft: 0}},
	}
	for _, tc := range cases {
		if got := s.ProgressAt(tc.current); got != tc.want {
			t.Errorf("ProgressAt(%d) = %+v, want %+v", tc.current, got, tc.want)
		}
	}
}
