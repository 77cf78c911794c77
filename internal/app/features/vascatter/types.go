// internal/app/features/vascatter/types.go
package vascatter

// MemberID points a bubble back at one of its source records.
type MemberID struct {
	EntryID   int64  `json:"entry_id"`
	SessionID int64  `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// Bubble is one aggregated marker on the valence/arousal plane. Samples
// sharing an exact coordinate pair collapse into a single bubble whose
// size grows sub-linearly with the member count.
type Bubble struct {
	Valence float64    `json:"valence"`
	Arousal float64    `json:"arousal"`
	Count   int        `json:"count"`
	Size    float64    `json:"size"`
	Hover   string     `json:"hover"`
	Color   string     `json:"color"`
	Members []MemberID `json:"members"`
}

// PlaneVM is the scatter view model served to the frontend.
type PlaneVM struct {
	Bubbles []Bubble `json:"bubbles"`
}
