// internal/app/features/vascatter/handler.go
package vascatter

import (
	"net/http"

	"github.com/dalemusser/stratamood/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler serves the valence/arousal scatter endpoint.
type Handler struct {
	Comp *Component
	Log  *zap.Logger
}

// ServePlane returns the current aggregated bubble set.
func (h *Handler) ServePlane(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Comp.Current())
}
