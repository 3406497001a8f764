// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/evidencehub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	nav "github.com/dalemusser/waffle/pantry/httpnav"
)

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	if backURL == "" {
		backURL = nav.ResolveBackURL(r, "/")
	}
	w.WriteHeader(status)
	data := pageData{
		SiteTitle: viewdata.CurrentSite().Title,
		Title:     title,
		Message:   msg,
		BackURL:   backURL,
	}
	templates.Render(w, r, "error_page", data)
}

// RenderNotFound shows a friendly "not found" page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "That page does not exist."
	}
	render(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a friendly "bad request" page with a message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "The request could not be understood."
	}
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}
