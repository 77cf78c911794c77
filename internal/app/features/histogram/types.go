// internal/app/features/histogram/types.go
package histogram

// ActivityVM is one activity bar segment within a day.
type ActivityVM struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Mood      float64 `json:"mood"`
	MoodColor string  `json:"mood_color"`
}

// DaySlot is one of the seven Monday..Sunday slots of a week. A slot
// without data keeps its weekday label but has an empty date and no
// activities.
type DaySlot struct {
	Weekday    string       `json:"weekday"`
	Date       string       `json:"date,omitempty"` // "2006-01-02"
	Activities []ActivityVM `json:"activities"`
}

// GridVM is the weekly histogram view model served to the frontend:
// the selected week's seven slots plus the navigation state around it.
type GridVM struct {
	Weeks        []string  `json:"weeks"` // all week keys, most recent first
	SelectedWeek string    `json:"selected_week"`
	Label        string    `json:"label"`
	Days         []DaySlot `json:"days"` // always 7, Monday..Sunday
	Merging      bool      `json:"merging"`
}

// MergeInput is the request body for the activity label merge endpoint.
type MergeInput struct {
	Sources []string `json:"sources"`
	Target  string   `json:"target"`
}

var weekdayLabels = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
