// internal/app/features/flowriver/routes.go
package flowriver

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the flowriver feature.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSeries)
	return r
}
