// internal/app/features/culture/handler.go
package culture

import (
	"net/http"

	uierrors "github.com/dalemusser/evidencehub/internal/app/features/errors"
	evidencestore "github.com/dalemusser/evidencehub/internal/app/store/evidence"
	studyresstore "github.com/dalemusser/evidencehub/internal/app/store/studyres"
	"github.com/dalemusser/evidencehub/internal/app/system/navigation"
	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the nightlife culture research page and the study resource
// detail pages under it.
type Handler struct {
	Evidence  *evidencestore.Store
	Resources *studyresstore.Store
	Log       *zap.Logger
}

func NewHandler(evidence *evidencestore.Store, resources *studyresstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Evidence: evidence, Resources: resources, Log: logger}
}

// resourceVM is a study resource prepared for display, with its detail URL.
type resourceVM struct {
	models.StudyResource
	DetailURL string
}

type pageData struct {
	viewdata.BaseVM
	Phases         []phase
	Deliverables   []deliverableStatus
	Districts      []district
	Establishments []establishment
	Resources      []resourceVM
	References     []models.Reference
	Evidence       []models.EvidenceRecord
}

// ServePage handles GET /culture.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := visitor.ID(r)
	h.Evidence.Touch(visitorID)

	resources := h.Resources.Resources()
	rvms := make([]resourceVM, len(resources))
	for i, res := range resources {
		rvms[i] = resourceVM{
			StudyResource: res,
			DetailURL:     "/culture/resources/" + studyresstore.Slug(res.Name),
		}
	}

	evidence := evidencestore.Filter(h.Evidence.Records(visitorID), evidencestore.Criteria{
		Section: models.SectionCulture,
	})

	data := pageData{
		BaseVM:         viewdata.NewBaseVM(r, "Nightlife Culture", "/"),
		Phases:         phases,
		Deliverables:   deliverableStatuses,
		Districts:      districts,
		Establishments: establishments,
		Resources:      rvms,
		References:     h.Resources.References(),
		Evidence:       evidence,
	}

	templates.Render(w, r, "culture_page", data)
}

type resourceDetailData struct {
	viewdata.BaseVM
	Resource models.StudyResource
}

// ServeResource handles GET /culture/resources/{slug}.
func (h *Handler) ServeResource(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	res, ok := h.Resources.BySlug(slug)
	if !ok {
		uierrors.RenderNotFound(w, r, "That study resource does not exist.", "/culture")
		return
	}

	data := resourceDetailData{
		BaseVM:   viewdata.NewBaseVM(r, res.Name, "/culture"),
		Resource: res,
	}
	data.BackURL = navigation.SafeBackURL(r, navigation.CultureBackURL)

	templates.Render(w, r, "culture_resource", data)
}
