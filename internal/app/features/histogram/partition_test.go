// internal/app/features/histogram/partition_test.go
package histogram

import (
	"testing"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
)

func day(date string, acts ...metricsapi.Activity) metricsapi.HistogramDay {
	return metricsapi.HistogramDay{Day: date, Activities: acts}
}

func TestPartitionSevenSlots(t *testing.T) {
	// 2024-01-03 is a Wednesday in ISO week 2024-W01.
	g := Partition([]metricsapi.HistogramDay{
		day("2024-01-03", metricsapi.Activity{Name: "run", Count: 2, Mood: 7}),
	}, false)

	days := g.Days()
	if len(days) != 7 {
		t.Fatalf("len(Days()) = %d, want 7", len(days))
	}
	for i, want := range weekdayLabels {
		if days[i].Weekday != want {
			t.Errorf("days[%d].Weekday = %q, want %q", i, days[i].Weekday, want)
		}
	}
	if days[2].Date != "2024-01-03" {
		t.Errorf("Wednesday slot date = %q, want 2024-01-03", days[2].Date)
	}
	if days[0].Date != "" || len(days[0].Activities) != 0 {
		t.Errorf("Monday slot should be empty, got %+v", days[0])
	}
}

func TestPartitionPreservesAllDates(t *testing.T) {
	in := []metricsapi.HistogramDay{
		day("2024-01-01"), // Monday W01
		day("2024-01-07"), // Sunday W01
		day("2024-01-08"), // Monday W02
		day("2024-02-29"), // Thursday W09
	}
	g := Partition(in, false)

	got := map[string]bool{}
	for _, week := range g.Weeks() {
		g.selected = week
		for _, slot := range g.Days() {
			if slot.Date != "" {
				got[slot.Date] = true
			}
		}
	}
	for _, d := range in {
		if !got[d.Day] {
			t.Errorf("date %s missing from grid", d.Day)
		}
	}
	if len(got) != len(in) {
		t.Errorf("grid has %d dates, want %d", len(got), len(in))
	}
}

func TestPartitionWeeksSortedDescending(t *testing.T) {
	// Weeks 9 and 10 of the same year verify that zero-padded keys sort
	// in calendar order.
	g := Partition([]metricsapi.HistogramDay{
		day("2024-02-28"), // W09
		day("2024-03-06"), // W10
		day("2023-12-25"), // 2023-W52
	}, false)

	want := []string{"2024-W10", "2024-W09", "2023-W52"}
	weeks := g.Weeks()
	if len(weeks) != len(want) {
		t.Fatalf("Weeks() = %v, want %v", weeks, want)
	}
	for i := range want {
		if weeks[i] != want[i] {
			t.Errorf("weeks[%d] = %q, want %q", i, weeks[i], want[i])
		}
	}
	if g.Selected() != "2024-W10" {
		t.Errorf("Selected() = %q, want most recent week 2024-W10", g.Selected())
	}
}

func TestPartitionEntryScopedSelection(t *testing.T) {
	g := Partition([]metricsapi.HistogramDay{
		day("2024-01-02"), // W01, the entry's own week
		day("2024-03-06"), // W10
	}, true)
	if g.Selected() != "2024-W01" {
		t.Errorf("entry-scoped Selected() = %q, want 2024-W01", g.Selected())
	}
}

func TestPartitionSkipsBadDates(t *testing.T) {
	g := Partition([]metricsapi.HistogramDay{
		day("not-a-date"),
		day("2024-01-02"),
	}, false)
	if len(g.Weeks()) != 1 {
		t.Errorf("Weeks() = %v, want the one parseable week", g.Weeks())
	}
}

func TestActivitiesSortedByCountDescending(t *testing.T) {
	g := Partition([]metricsapi.HistogramDay{
		day("2024-01-02",
			metricsapi.Activity{Name: "read", Count: 1},
			metricsapi.Activity{Name: "run", Count: 5},
			metricsapi.Activity{Name: "walk", Count: 5},
			metricsapi.Activity{Name: "cook", Count: 3},
		),
	}, false)

	acts := g.Days()[1].Activities
	want := []string{"run", "walk", "cook", "read"} // stable: run before walk
	if len(acts) != len(want) {
		t.Fatalf("got %d activities, want %d", len(acts), len(want))
	}
	for i := range want {
		if acts[i].Name != want[i] {
			t.Errorf("acts[%d].Name = %q, want %q", i, acts[i].Name, want[i])
		}
	}
}

func TestWeekNavigationBoundaries(t *testing.T) {
	g := Partition([]metricsapi.HistogramDay{
		day("2024-01-02"), // W01
		day("2024-01-09"), // W02
	}, false)

	if g.Selected() != "2024-W02" {
		t.Fatalf("Selected() = %q, want 2024-W02", g.Selected())
	}

	g.NextWeek() // already newest, no-op
	if g.Selected() != "2024-W02" {
		t.Errorf("NextWeek at newest moved to %q", g.Selected())
	}

	g.PrevWeek()
	if g.Selected() != "2024-W01" {
		t.Errorf("PrevWeek moved to %q, want 2024-W01", g.Selected())
	}

	g.PrevWeek() // already oldest, no-op
	if g.Selected() != "2024-W01" {
		t.Errorf("PrevWeek at oldest moved to %q", g.Selected())
	}
}

func TestLabel(t *testing.T) {
	empty := Partition(nil, false)
	if got := empty.Label(); got != "No activity data available" {
		t.Errorf("empty Label() = %q", got)
	}

	g := Partition([]metricsapi.HistogramDay{day("2024-01-03")}, false)
	if got := g.Label(); got != "Jan 1 - Jan 7, 2024" {
		t.Errorf("Label() = %q, want %q", got, "Jan 1 - Jan 7, 2024")
	}
}

func TestMoodColor(t *testing.T) {
	tests := []struct {
		mood float64
		want string
	}{
		{0, "hsl(53, 70%, 50%)"},  // missing defaults to 5
		{1, "hsl(0, 70%, 50%)"},   // worst mood is red
		{10, "hsl(120, 70%, 50%)"}, // best mood is green
		{5.5, "hsl(60, 70%, 50%)"},
		{-3, "hsl(0, 70%, 50%)"},  // clamped low
		{42, "hsl(120, 70%, 50%)"}, // clamped high
	}
	for _, tt := range tests {
		if got := MoodColor(tt.mood); got != tt.want {
			t.Errorf("MoodColor(%v) = %q, want %q", tt.mood, got, tt.want)
		}
	}
}
