// internal/app/features/plan/handler.go
package plan

import (
	"net/http"

	timelinestore "github.com/dalemusser/evidencehub/internal/app/store/timeline"
	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the 17-week plan timeline.
type Handler struct {
	Timeline *timelinestore.Store
	Log      *zap.Logger
}

func NewHandler(timeline *timelinestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Timeline: timeline, Log: logger}
}

type bucketOption struct {
	Value string
	Label string
}

var bucketFilters = []bucketOption{
	{Value: models.BucketAll, Label: "All Categories"},
	{Value: models.BucketLanguage, Label: "Language"},
	{Value: models.BucketCulture, Label: "Culture"},
	{Value: models.BucketAdmin, Label: "Admin"},
	{Value: models.BucketMilestone, Label: "Milestone"},
}

// milestoneVM is a milestone plus whether the program has reached it.
type milestoneVM struct {
	models.Milestone
	Reached bool
}

// weekVM is a week entry plus its relation to the current week.
type weekVM struct {
	models.WeekEntry
	Done    bool
	Current bool
}

type pageData struct {
	viewdata.BaseVM
	Bucket     string
	Buckets    []bucketOption
	Weeks      []weekVM
	Milestones []milestoneVM
	Progress   timelinestore.Progress
}

// ServePage handles GET /plan. Supports a bucket query parameter; HTMX
// requests targeting the timeline get just the timeline snippet back.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	bucket := query.Get(r, "bucket")
	if bucket == "" {
		bucket = models.BucketAll
	}

	current := viewdata.CurrentSite().CurrentWeek
	progress := h.Timeline.ProgressAt(current)

	entries := h.Timeline.WeeksByBucket(bucket)
	weeks := make([]weekVM, len(entries))
	for i, entry := range entries {
		weeks[i] = weekVM{
			WeekEntry: entry,
			Done:      entry.Week < progress.CurrentWeek,
			Current:   entry.Week == progress.CurrentWeek,
		}
	}

	ms := h.Timeline.Milestones()
	milestones := make([]milestoneVM, len(ms))
	for i, m := range ms {
		milestones[i] = milestoneVM{Milestone: m, Reached: m.Week <= progress.CurrentWeek}
	}

	data := pageData{
		BaseVM:     viewdata.NewBaseVM(r, "Learning Journey", "/"),
		Bucket:     bucket,
		Buckets:    bucketFilters,
		Weeks:      weeks,
		Milestones: milestones,
		Progress:   progress,
	}

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "timeline-wrap" {
		templates.RenderSnippet(w, "plan_timeline", data)
		return
	}

	templates.Render(w, r, "plan_page", data)
}
