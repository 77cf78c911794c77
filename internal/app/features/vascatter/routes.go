// internal/app/features/vascatter/routes.go
package vascatter

import "github.com/go-chi/chi/v5"

// Routes mounts the scatter endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePlane)
	return r
}
