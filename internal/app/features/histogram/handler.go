// internal/app/features/histogram/handler.go
package histogram

import (
	"errors"
	"net/http"

	"github.com/dalemusser/stratamood/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler serves the weekly activity histogram endpoints.
type Handler struct {
	Comp *Component
	Log  *zap.Logger
}

// ServeGrid returns the current week grid view model.
func (h *Handler) ServeGrid(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Comp.Current())
}

// ServeMerge merges the requested activity labels into a single target and
// returns the refreshed grid.
func (h *Handler) ServeMerge(w http.ResponseWriter, r *http.Request) {
	var input MergeInput
	if err := jsonutil.Decode(r, &input); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}

	switch err := h.Comp.Merge(r.Context(), input.Sources, input.Target); {
	case err == nil:
		jsonutil.OK(w, h.Comp.Current())
	case errors.Is(err, ErrTooFewSources), errors.Is(err, ErrEmptyTarget):
		jsonutil.BadRequest(w, err.Error())
	case errors.Is(err, ErrMergeInFlight):
		jsonutil.Error(w, http.StatusConflict, err.Error())
	default:
		h.Log.Error("activity merge failed", zap.Error(err))
		jsonutil.Error(w, http.StatusBadGateway, "merge failed")
	}
}

// ServePrevWeek steps the week cursor one week older.
func (h *Handler) ServePrevWeek(w http.ResponseWriter, r *http.Request) {
	h.Comp.PrevWeek()
	jsonutil.OK(w, h.Comp.Current())
}

// ServeNextWeek steps the week cursor one week newer.
func (h *Handler) ServeNextWeek(w http.ResponseWriter, r *http.Request) {
	h.Comp.NextWeek()
	jsonutil.OK(w, h.Comp.Current())
}
