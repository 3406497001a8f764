// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	SiteTitle string
	Title     string
	Message   string
	BackURL   string
}

// Handler is the errors feature handler.
// No stores needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the friendly 404 page. Wired as the router's NotFound
// handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		SiteTitle: viewdata.CurrentSite().Title,
		Title:     "Page not found",
		Message:   "That page does not exist.",
		BackURL:   "/",
	}
	templates.Render(w, r, "error_page", data)
}
