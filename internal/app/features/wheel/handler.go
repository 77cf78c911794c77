// internal/app/features/wheel/handler.go
package wheel

import (
	"net/http"

	"github.com/dalemusser/stratamood/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler serves the emotion wheel endpoint.
type Handler struct {
	Comp *Component
	Log  *zap.Logger
}

// ServeWheel returns the current traces.
func (h *Handler) ServeWheel(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Comp.Current())
}
