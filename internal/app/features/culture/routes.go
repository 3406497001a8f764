// internal/app/features/culture/routes.go
package culture

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	r.Get("/resources/{slug}", h.ServeResource)
	return r
}
