// internal/app/features/pages/routes.go
package pages

import "github.com/go-chi/chi/v5"

// Routes registers each content page at its own top-level path on r.
// The pages live beside the feature mounts rather than under a shared
// prefix, so they attach to the root router directly.
func Routes(r chi.Router, h *Handler) {
	r.Get("/intro", h.ServePage("intro"))
	r.Get("/contract", h.ServePage("contract"))
	r.Get("/reflection", h.ServePage("reflection"))
}
