// internal/app/features/wheel/transform.go
package wheel

import (
	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/app/system/hovertext"
	"github.com/dalemusser/stratamood/internal/domain/models"
)

// BuildPrimaries converts backend primary rows into polar markers. Rows
// with labels outside the closed primary set are dropped; the count of
// dropped rows is returned for logging.
func BuildPrimaries(points []metricsapi.WheelPoint) ([]Marker, int) {
	markers := make([]Marker, 0, len(points))
	dropped := 0
	for _, p := range points {
		primary, err := models.ParsePrimary(p.Primary)
		if err != nil {
			dropped++
			continue
		}
		markers = append(markers, Marker{
			Angle:  AngleOf(primary),
			Radius: Radius(p.Intensity),
			Label:  string(primary),
			Color:  primary.Color(),
			Hover:  hovertext.Clean(p.SubLabel),
		})
	}
	return markers, dropped
}

// BuildDyads converts backend dyad rows into polar markers at the
// midpoint angle of their two primaries. A row is dropped when either
// constituent falls outside the closed set.
func BuildDyads(dyads []metricsapi.WheelDyad) ([]Marker, int) {
	markers := make([]Marker, 0, len(dyads))
	dropped := 0
	for _, d := range dyads {
		a, errA := models.ParsePrimary(d.PrimaryA)
		b, errB := models.ParsePrimary(d.PrimaryB)
		if errA != nil || errB != nil {
			dropped++
			continue
		}
		markers = append(markers, Marker{
			Angle:  MidpointAngle(AngleOf(a), AngleOf(b)),
			Radius: Radius(d.Weight),
			Label:  hovertext.Clean(d.DyadLabel),
			Color:  a.Color(),
		})
	}
	return markers, dropped
}
