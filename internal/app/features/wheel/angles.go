// internal/app/features/wheel/angles.go
package wheel

import (
	"math"

	"github.com/dalemusser/stratamood/internal/domain/models"
)

// MaxRadius is the display range for marker radii; intensities and dyad
// weights in [0, 1] scale onto it directly.
const MaxRadius = 3.0

// AngleOf returns the canonical wheel angle for a primary, in degrees.
// The eight primaries sit 45 degrees apart, clockwise from fear at 0.
// Rows with labels outside the closed set are rejected at decode time,
// so lookup is total; a zero angle for an invalid value never renders.
func AngleOf(p models.Primary) float64 {
	switch p {
	case models.PrimaryFear:
		return 0
	case models.PrimaryTrust:
		return 45
	case models.PrimaryJoy:
		return 90
	case models.PrimaryAnticipation:
		return 135
	case models.PrimaryAnger:
		return 180
	case models.PrimaryDisgust:
		return 225
	case models.PrimarySadness:
		return 270
	case models.PrimarySurprise:
		return 315
	}
	return 0
}

// MidpointAngle returns the angle halfway along the shorter arc between a
// and b, in [0, 360). The signed difference is normalized into
// (-180, 180] before halving, so pairs straddling the 0/360 boundary
// resolve across it rather than the long way around.
func MidpointAngle(a, b float64) float64 {
	diff := math.Mod(b-a, 360)
	if diff > 180 {
		diff -= 360
	}
	if diff <= -180 {
		diff += 360
	}
	mid := math.Mod(a+diff/2, 360)
	if mid < 0 {
		mid += 360
	}
	return mid
}

// Radius scales a [0, 1] intensity or weight onto the display range,
// clamping out-of-range backend values.
func Radius(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v * MaxRadius
}
