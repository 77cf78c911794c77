// internal/app/features/graphs/routes.go
package graphs

import "github.com/go-chi/chi/v5"

// Routes mounts the graph-state control endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/state", h.ServeState)
	r.Put("/view", h.ServeSetView)
	r.Put("/filter", h.ServeSetFilter)
	return r
}
