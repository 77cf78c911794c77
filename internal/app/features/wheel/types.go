// internal/app/features/wheel/types.go
package wheel

import "github.com/dalemusser/stratamood/internal/domain/models"

// Marker is one polar point on the wheel: a primary emotion at its table
// angle, or a dyad at the midpoint of its two primaries.
type Marker struct {
	Angle  float64 `json:"angle"`  // degrees, [0, 360)
	Radius float64 `json:"radius"` // [0, MaxRadius]
	Label  string  `json:"label"`
	Color  string  `json:"color"`
	Hover  string  `json:"hover,omitempty"`
}

// Trace is one independently toggleable marker set. The wheel renders up
// to four: primaries and dyads for each of the two sources.
type Trace struct {
	Source  models.Source `json:"source"`
	Kind    string        `json:"kind"` // "primaries" or "dyads"
	Markers []Marker      `json:"markers"`
}

// WheelVM is the wheel view model served to the frontend.
type WheelVM struct {
	Traces []Trace `json:"traces"`
}

const (
	kindPrimaries = "primaries"
	kindDyads     = "dyads"
)
