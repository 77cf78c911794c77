// internal/app/features/flowriver/types.go
package flowriver

import (
	"time"

	"github.com/dalemusser/stratamood/internal/domain/models"
)

// SeriesState tells the frontend how to treat the series.
type SeriesState string

const (
	// StateNoData means nothing can be drawn; render the "insufficient
	// data" affordance instead of an empty chart.
	StateNoData SeriesState = "no_data"
	// StatePadded means the input held a single timestamp and a synthetic
	// second point one hour later was added so a segment can be drawn.
	StatePadded SeriesState = "padded"
	// StateSeries is the normal resampled case.
	StateSeries SeriesState = "series"
)

// FlowSample is one decoded, validated flow record.
type FlowSample struct {
	Time      time.Time
	Primary   models.Primary
	Intensity float64
	Reasons   []string
}

// Point is a single display point of one primary's trace. Value is the
// interpolated intensity; Reasons are the annotations of the nearest
// original sample, carried for hover display, never interpolated.
type Point struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Reasons   []string  `json:"reasons"`
}

// Trace is one primary's dense series over the shared display axis.
type Trace struct {
	Primary models.Primary `json:"primary"`
	Color   string         `json:"color"`
	Points  []Point        `json:"points"`
}

// SeriesVM is the river view model served to the charting frontend.
// All traces share Axis; summing trace values at one axis position gives
// the stacked total, and YMax is the padded axis ceiling derived from the
// largest such total.
type SeriesVM struct {
	State  SeriesState `json:"state"`
	Axis   []time.Time `json:"axis"`
	Traces []Trace     `json:"traces"`
	YMax   float64     `json:"y_max"`
}
