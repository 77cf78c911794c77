// internal/app/features/spider/routes.go
package spider

import "github.com/go-chi/chi/v5"

// Routes mounts the radar endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRadar)
	return r
}
