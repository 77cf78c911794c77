// internal/app/features/graphs/handler.go
//
// The graphs feature is the control surface for the dashboard: it owns no
// chart of its own but drives the shared view/filter state the chart
// features subscribe to.
package graphs

import (
	"net/http"

	"github.com/dalemusser/stratamood/internal/app/system/graphstate"
	"github.com/dalemusser/stratamood/internal/app/system/jsonutil"
	"github.com/dalemusser/stratamood/internal/domain/models"
	"go.uber.org/zap"
)

// Handler mutates and reads the shared graph state.
type Handler struct {
	State *graphstate.Store
	Log   *zap.Logger
}

type viewInput struct {
	View string `json:"view"`
}

// ServeState returns the current (view, filter) snapshot.
func (h *Handler) ServeState(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.State.Snapshot())
}

// ServeSetView replaces the current view. Every chart component re-fetches
// as a side effect of the store notification.
func (h *Handler) ServeSetView(w http.ResponseWriter, r *http.Request) {
	var input viewInput
	if err := jsonutil.Decode(r, &input); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}
	view, err := models.ParseView(input.View)
	if err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}
	h.State.SetView(view)
	jsonutil.OK(w, h.State.Snapshot())
}

// ServeSetFilter replaces the current filter whole. An empty body field
// clears that scope; sending {} clears both.
func (h *Handler) ServeSetFilter(w http.ResponseWriter, r *http.Request) {
	var filter models.Filter
	if err := jsonutil.Decode(r, &filter); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}
	h.State.SetFilter(filter)
	jsonutil.OK(w, h.State.Snapshot())
}
