// internal/app/store/metricsapi/types.go
package metricsapi

import (
	"fmt"
	"time"
)

// FlowItem is one themeriver sample: a (timestamp, emotion, intensity)
// record with the free-text reasons extracted from the journal entry.
type FlowItem struct {
	Timestamp string   `json:"timestamp"`
	Emotion   string   `json:"emotion"`
	Intensity float64  `json:"intensity"`
	Reasons   []string `json:"reasons"`
}

// flowResponse is the envelope returned by GET /themeriver.
type flowResponse struct {
	Items []FlowItem `json:"items"`
}

// Activity is a named activity with its occurrence count and the mood
// rating (1..10) recorded alongside it. Count and mood are optional in
// backend rows and default to zero.
type Activity struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Mood  float64 `json:"mood"`
}

// HistogramDay is one day of activity counts from GET /metrics/histogram.
type HistogramDay struct {
	Day        string     `json:"day"` // "2006-01-02"
	Activities []Activity `json:"activities"`
}

// MergeRequest is the body of POST /metrics/activities/merge. The backend
// rewrites every record whose label matches a source (case-insensitive)
// to the target label, summing counts.
type MergeRequest struct {
	Sources []string `json:"sources"`
	Target  string   `json:"target"`
}

// VAPoint is one valence/arousal sample from GET /va-results.
type VAPoint struct {
	EntryID          int64    `json:"entry_id"`
	SessionID        int64    `json:"session_id"`
	Valence          float64  `json:"valence"` // -1..1
	Arousal          float64  `json:"arousal"` // 0..1
	PrimaryEmotion   string   `json:"primary_emotion"`
	SecondaryEmotion string   `json:"secondary_emotion"`
	ActivityTags     []string `json:"activity_tags"`
	Timestamp        string   `json:"timestamp"`
}

// WheelPoint is one primary-emotion marker from GET /plutchik-results.
type WheelPoint struct {
	EntryID   int64   `json:"entry_id"`
	SessionID int64   `json:"session_id"`
	Source    string  `json:"source"` // "ai" or "user"
	Primary   string  `json:"primary"`
	Level     int     `json:"level"`     // 1..3
	Intensity float64 `json:"intensity"` // 0..1
	SubLabel  string  `json:"sub_label"`
	Timestamp string  `json:"timestamp"`
}

// WheelDyad is one paired-emotion marker from GET /plutchik-dyads.
type WheelDyad struct {
	EntryID   int64   `json:"entry_id"`
	SessionID int64   `json:"session_id"`
	Source    string  `json:"source"`
	PrimaryA  string  `json:"primary_a"`
	PrimaryB  string  `json:"primary_b"`
	DyadLabel string  `json:"dyad_label"`
	Weight    float64 `json:"weight"` // 0..1
	Timestamp string  `json:"timestamp"`
}

// SpiderRow is one radar-axis rating from GET /metrics/spider-results.
type SpiderRow struct {
	Source      string  `json:"source"`
	Description string  `json:"description"` // axis key: f1..f7
	Rating      float64 `json:"rating"`      // 0..10
	EntryID     int64   `json:"entry_id"`
	SessionID   int64   `json:"session_id"`
}

// timestampLayouts are tried in order when parsing backend timestamps.
// The backend emits ISO-8601; older rows lack a zone suffix.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp string. Zone-less values are
// taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}
