// internal/app/features/deliverables/blob.go
package deliverables

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/evidencehub/internal/app/system/visitor"
	"github.com/go-chi/chi/v5"
)

// ServeBlob handles GET /deliverables/blob/{id}, streaming the bytes of a
// session-scoped upload. Blobs are visible only to the visitor who uploaded
// them; anyone else gets a plain 404 since this is a media URL, not a page.
func (h *Handler) ServeBlob(w http.ResponseWriter, r *http.Request) {
	visitorID, ok := visitor.ID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	b, ok := h.Evidence.Blob(visitorID, chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	ct := b.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Length", strconv.Itoa(len(b.Data)))
	w.Header().Set("Cache-Control", "private, no-store")
	w.Write(b.Data)
}
