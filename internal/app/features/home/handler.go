// internal/app/features/home/handler.go
package home

import (
	"net/http"

	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	timelinestore "github.com/dalemusser/evidencehub/internal/app/store/timeline"
	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	Evidence *evidencestore.Store
	Timeline *timelinestore.Store
	Log      *zap.Logger
}

func NewHandler(evidence *evidencestore.Store, timeline *timelinestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Evidence: evidence,
		Timeline: timeline,
		Log:      logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

type homeData struct {
	viewdata.BaseVM
	Summary  evidencestore.Summary
	Progress timelinestore.Progress
}

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := visitor.ID(r)
	h.Evidence.Touch(visitorID)

	data := homeData{
		BaseVM:   viewdata.NewBaseVM(r, "Welcome", "/"),
		Summary:  evidencestore.Summarize(h.Evidence.Records(visitorID)),
		Progress: h.Timeline.ProgressAt(viewdata.CurrentSite().CurrentWeek),
	}

	templates.Render(w, r, "home", data)
}
