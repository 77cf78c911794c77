// internal/app/features/spider/types.go
package spider

import "github.com/dalemusser/stratamood/internal/domain/models"

// AxisCount is the number of radar axes; the backend keys them f1..f7.
const AxisCount = 7

// RatingMax is the top of the rating scale shared by every axis.
const RatingMax = 10.0

// axisKeys are the backend row keys, in display order.
var axisKeys = []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7"}

// AxisLabels are the human-readable axis names, index-aligned with
// axisKeys.
var AxisLabels = []string{
	"distressed", "irritable", "nervous", "scared", "unhappy", "upset", "lonely",
}

// RadarTrace is one source's ratings across the seven axes, index-aligned
// with AxisLabels. Axes the source never rated hold zero.
type RadarTrace struct {
	Source  models.Source `json:"source"`
	Ratings []float64     `json:"ratings"`
}

// RadarVM is the spider view model served to the frontend.
type RadarVM struct {
	Labels []string     `json:"labels"`
	Scale  float64      `json:"scale"`
	Traces []RadarTrace `json:"traces"`
}
