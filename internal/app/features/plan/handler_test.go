// internal/app/features/plan/handler_test.go
package plan

import (
	"testing"

	timelinestore "github.com/dalemusser/evidencehub/internal/app/store/timeline"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	timeline, err := timelinestore.New(timelinestore.SeedWeeks(), timelinestore.SeedMilestones())
	if err != nil {
		t.Fatalf("timeline store: %v", err)
	}
	return NewHandler(timeline, zap.NewNop())
}

func TestBucketFilters(t *testing.T) {
	if bucketFilters[0].Value != models.BucketAll {
		t.Errorf("first bucket filter = %q, want the all sentinel", bucketFilters[0].Value)
	}
	// Every non-sentinel filter must be a real bucket.
	for _, f := range bucketFilters[1:] {
		if !models.IsValidBucket(f.Value) {
			t.Errorf("filter %q is not a valid bucket", f.Value)
		}
	}
}

func TestWeekStatusFlags(t *testing.T) {
	h := newTestHandler(t)
	progress := h.Timeline.ProgressAt(16)

	entries := h.Timeline.WeeksByBucket(models.BucketAll)
	for _, entry := range entries {
		done := entry.Week < progress.CurrentWeek
		current := entry.Week == progress.CurrentWeek
		if done && current {
			t.Errorf("week %d flagged as both done and current", entry.Week)
		}
		if entry.Week == 16 && !current {
			t.Error("week 16 should be current at CurrentWeek 16")
		}
		if entry.Week == 17 && (done || current) {
			t.Error("week 17 should be upcoming at CurrentWeek 16")
		}
	}
}
