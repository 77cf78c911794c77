// internal/app/features/histogram/partition.go
package histogram

import (
	"fmt"
	"sort"
	"time"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
)

const dayLayout = "2006-01-02"

// WeekGrid holds daily activity records partitioned into ISO calendar
// weeks, with a navigable selected-week cursor. It is rebuilt whole on
// every fetch; navigation only moves the cursor.
type WeekGrid struct {
	groups map[string][]DaySlot // week key -> 7 Monday..Sunday slots
	weeks  []string             // keys sorted descending (most recent first)

	selected string
}

// Partition groups days by ISO year and week. Records with an unparseable
// date are skipped. The initial selection is the week containing the first
// record when the fetch was entry-scoped, otherwise the most recent week.
func Partition(days []metricsapi.HistogramDay, entryScoped bool) *WeekGrid {
	g := &WeekGrid{groups: make(map[string][]DaySlot)}

	var firstKey string
	for _, d := range days {
		date, err := time.Parse(dayLayout, d.Day)
		if err != nil {
			continue
		}
		key := weekKey(date)
		if firstKey == "" {
			firstKey = key
		}

		slots, ok := g.groups[key]
		if !ok {
			slots = emptyWeek()
			g.weeks = append(g.weeks, key)
		}
		idx := mondayIndex(date)
		slots[idx] = DaySlot{
			Weekday:    weekdayLabels[idx],
			Date:       d.Day,
			Activities: sortActivities(d.Activities),
		}
		g.groups[key] = slots
	}

	sort.Sort(sort.Reverse(sort.StringSlice(g.weeks)))

	switch {
	case entryScoped && firstKey != "":
		g.selected = firstKey
	case len(g.weeks) > 0:
		g.selected = g.weeks[0]
	}
	return g
}

// weekKey formats the ISO year and week of a date, e.g. "2024-W05".
// The week is zero-padded so lexicographic order matches calendar order.
func weekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// mondayIndex maps a date's weekday onto 0..6 with Monday first.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func emptyWeek() []DaySlot {
	slots := make([]DaySlot, 7)
	for i := range slots {
		slots[i] = DaySlot{Weekday: weekdayLabels[i], Activities: []ActivityVM{}}
	}
	return slots
}

// sortActivities orders a day's activities by count descending; ties keep
// input order.
func sortActivities(in []metricsapi.Activity) []ActivityVM {
	out := make([]ActivityVM, len(in))
	for i, a := range in {
		out[i] = ActivityVM{
			Name:      a.Name,
			Count:     a.Count,
			Mood:      a.Mood,
			MoodColor: MoodColor(a.Mood),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// MoodColor maps a 1..10 mood rating onto a red-to-green HSL hue. Zero
// (missing) defaults to the neutral 5; out-of-range values are clamped.
func MoodColor(mood float64) string {
	m := mood
	if m == 0 {
		m = 5
	}
	if m < 1 {
		m = 1
	}
	if m > 10 {
		m = 10
	}
	hue := (m - 1) * (120.0 / 9.0)
	return fmt.Sprintf("hsl(%.0f, 70%%, 50%%)", hue)
}

// Weeks returns all discovered week keys, most recent first.
func (g *WeekGrid) Weeks() []string { return g.weeks }

// Selected returns the current week key, or "" when none is selected.
func (g *WeekGrid) Selected() string { return g.selected }

// PrevWeek moves the cursor one week older; a no-op at the oldest week or
// with no selection.
func (g *WeekGrid) PrevWeek() {
	if idx := g.selectedIndex(); idx >= 0 && idx < len(g.weeks)-1 {
		g.selected = g.weeks[idx+1]
	}
}

// NextWeek moves the cursor one week newer; a no-op at the newest week or
// with no selection.
func (g *WeekGrid) NextWeek() {
	if idx := g.selectedIndex(); idx > 0 {
		g.selected = g.weeks[idx-1]
	}
}

func (g *WeekGrid) selectedIndex() int {
	for i, w := range g.weeks {
		if w == g.selected {
			return i
		}
	}
	return -1
}

// Days returns the seven Monday..Sunday slots of the selected week, or
// empty labeled slots when nothing is selected.
func (g *WeekGrid) Days() []DaySlot {
	if slots, ok := g.groups[g.selected]; ok {
		out := make([]DaySlot, len(slots))
		copy(out, slots)
		return out
	}
	return emptyWeek()
}

// Label renders the selected week's Monday-to-Sunday span, e.g.
// "Jan 1 - Jan 7, 2024".
func (g *WeekGrid) Label() string {
	if len(g.weeks) == 0 {
		return "No activity data available"
	}
	if g.selected == "" {
		return "Loading..."
	}

	start, end, ok := g.selectedSpan()
	if !ok {
		return "Loading..."
	}
	return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}

// selectedSpan derives Monday and Sunday from any date in the selected
// week.
func (g *WeekGrid) selectedSpan() (start, end time.Time, ok bool) {
	for _, slot := range g.groups[g.selected] {
		if slot.Date == "" {
			continue
		}
		d, err := time.Parse(dayLayout, slot.Date)
		if err != nil {
			continue
		}
		start = d.AddDate(0, 0, -mondayIndex(d))
		return start, start.AddDate(0, 0, 6), true
	}
	return time.Time{}, time.Time{}, false
}
