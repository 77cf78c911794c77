// internal/app/features/spider/handler.go
package spider

import (
	"net/http"

	"github.com/dalemusser/stratamood/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler serves the radar endpoint.
type Handler struct {
	Comp *Component
	Log  *zap.Logger
}

// ServeRadar returns the current radar traces.
func (h *Handler) ServeRadar(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Comp.Current())
}
