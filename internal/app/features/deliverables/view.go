// internal/app/features/deliverables/view.go
package deliverables

import (
	"net/http"

	uierrors "github.com/dalemusser/evidencehub/internal/app/features/errors"
	"github.com/dalemusser/evidencehub/internal/app/system/navigation"
	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/dalemusser/evidencehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

type viewData struct {
	viewdata.BaseVM
	Record       models.EvidenceRecord
	SectionLabel string
	ThumbURL     string
	IsEmbed      bool
}

// ServeView handles GET /deliverables/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	visitorID, _ := visitor.ID(r)
	h.Evidence.Touch(visitorID)

	id := chi.URLParam(r, "id")
	rec, ok := h.Evidence.Get(visitorID, id)
	if !ok {
		uierrors.RenderNotFound(w, r, "That evidence item does not exist.", "/deliverables")
		return
	}

	data := viewData{
		BaseVM:       viewdata.NewBaseVM(r, rec.Title, "/deliverables"),
		Record:       rec,
		SectionLabel: models.SectionLabel(rec.Section),
		ThumbURL:     thumbURL(rec),
		IsEmbed:      rec.IsEmbed(),
	}
	// The generic resolver does not know the gallery's allowed prefixes.
	data.BackURL = navigation.SafeBackURL(r, navigation.DeliverablesBackURL)

	templates.Render(w, r, "deliverable_view", data)
}
