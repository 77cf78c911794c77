// internal/domain/models/emotions.go
package models

import "fmt"

// Primary is one of the eight fixed emotion labels used across the flow,
// scatter, and wheel views. The set is closed: backend rows carrying any
// other label are rejected at decode time so downstream lookup tables
// (color, angle) stay exhaustive.
type Primary string

const (
	PrimaryJoy          Primary = "joy"
	PrimaryTrust        Primary = "trust"
	PrimaryFear         Primary = "fear"
	PrimarySurprise     Primary = "surprise"
	PrimarySadness      Primary = "sadness"
	PrimaryDisgust      Primary = "disgust"
	PrimaryAnger        Primary = "anger"
	PrimaryAnticipation Primary = "anticipation"
)

// PrimaryOrder is the stacking/legend order used by the flow view.
func PrimaryOrder() []Primary {
	return []Primary{
		PrimaryJoy,
		PrimaryTrust,
		PrimaryFear,
		PrimarySurprise,
		PrimarySadness,
		PrimaryDisgust,
		PrimaryAnger,
		PrimaryAnticipation,
	}
}

// ParsePrimary validates an emotion label from a backend row.
func ParsePrimary(s string) (Primary, error) {
	switch Primary(s) {
	case PrimaryJoy, PrimaryTrust, PrimaryFear, PrimarySurprise,
		PrimarySadness, PrimaryDisgust, PrimaryAnger, PrimaryAnticipation:
		return Primary(s), nil
	}
	return "", fmt.Errorf("unknown primary emotion %q", s)
}

// FallbackColor is used for any category outside the primary set.
const FallbackColor = "#FFFFFF"

// Color returns the display color for a primary.
func (p Primary) Color() string {
	switch p {
	case PrimaryJoy:
		return "#FFD700"
	case PrimaryTrust:
		return "#2ECC71"
	case PrimaryFear:
		return "#1E90FF"
	case PrimarySurprise:
		return "#FF69B4"
	case PrimarySadness:
		return "#708090"
	case PrimaryDisgust:
		return "#8B0000"
	case PrimaryAnger:
		return "#FF4500"
	case PrimaryAnticipation:
		return "#FFA500"
	}
	return FallbackColor
}

// ColorFor returns the display color for an arbitrary category label,
// falling back for anything outside the primary set.
func ColorFor(label string) string {
	p, err := ParsePrimary(label)
	if err != nil {
		return FallbackColor
	}
	return p.Color()
}

// Source distinguishes the two parallel assessment traces rendered by
// the wheel and spider views.
type Source string

const (
	SourceAI   Source = "ai"
	SourceUser Source = "user"
)
