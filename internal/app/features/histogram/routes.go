// internal/app/features/histogram/routes.go
package histogram

import "github.com/go-chi/chi/v5"

// Routes mounts the histogram endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGrid)
	r.Post("/merge", h.ServeMerge)
	r.Post("/prev", h.ServePrevWeek)
	r.Post("/next", h.ServeNextWeek)
	return r
}
