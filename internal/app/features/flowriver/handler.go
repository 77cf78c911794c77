// internal/app/features/flowriver/handler.go
package flowriver

import (
	"net/http"

	"github.com/dalemusser/stratamood/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler serves the river series to the charting frontend.
type Handler struct {
	Comp *Component
	Log  *zap.Logger
}

// NewHandler creates a new flowriver handler.
func NewHandler(comp *Component, logger *zap.Logger) *Handler {
	return &Handler{Comp: comp, Log: logger}
}

// ServeSeries handles GET /api/graphs/flowriver - the latest normalized
// stacked-flow series for the current view/filter.
func (h *Handler) ServeSeries(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Comp.Current())
}
