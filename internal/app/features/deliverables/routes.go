// internal/app/features/deliverables/routes.go
package deliverables

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/new", h.ServeNew)
	r.Post("/new", h.HandleCreate)
	r.Get("/blob/{id}", h.ServeBlob)
	r.Get("/{id}", h.ServeView)
	return r
}
