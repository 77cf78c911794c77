// internal/app/features/wheel/routes.go
package wheel

import "github.com/go-chi/chi/v5"

// Routes mounts the wheel endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeWheel)
	return r
}
