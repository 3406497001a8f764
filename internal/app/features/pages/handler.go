// internal/app/features/pages/handler.go
package pages

import (
	"net/http"

	uierrors "github.com/dalemusser/evidencehub/internal/app/features/errors"
	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the long-form content pages (introduction, learning
// contract, reflection). Content is compiled in; there is no editing UI.
type Handler struct {
	Log   *zap.Logger
	pages map[string]Page
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log:   logger,
		pages: pagesBySlug(),
	}
}

type pageViewData struct {
	viewdata.BaseVM
	Page Page
}

// ServePage handles GET for a single content page by slug.
func (h *Handler) ServePage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := h.pages[slug]
		if !ok {
			uierrors.RenderNotFound(w, r, "", "/")
			return
		}
		data := pageViewData{
			BaseVM: viewdata.NewBaseVM(r, page.Title, "/"),
			Page:   page,
		}
		templates.Render(w, r, "content_page", data)
	}
}
