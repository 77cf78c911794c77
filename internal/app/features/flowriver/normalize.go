// internal/app/features/flowriver/normalize.go
package flowriver

import (
	"sort"
	"time"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/app/system/hovertext"
	"github.com/dalemusser/stratamood/internal/domain/models"
)

const (
	displayStep   = 24 * time.Hour
	singlePadStep = time.Hour
	yAxisPad      = 0.1
)

// DecodeItems validates raw backend rows into FlowSamples, sanitizing the
// free-text reasons on the way in. Rows with an unparseable timestamp or a
// label outside the primary set are dropped; the count of dropped rows is
// returned so the caller can log it.
func DecodeItems(items []metricsapi.FlowItem) ([]FlowSample, int) {
	samples := make([]FlowSample, 0, len(items))
	dropped := 0
	for _, it := range items {
		ts, err := metricsapi.ParseTimestamp(it.Timestamp)
		if err != nil {
			dropped++
			continue
		}
		p, err := models.ParsePrimary(it.Emotion)
		if err != nil {
			dropped++
			continue
		}
		samples = append(samples, FlowSample{
			Time:      ts,
			Primary:   p,
			Intensity: it.Intensity,
			Reasons:   hovertext.CleanAll(it.Reasons),
		})
	}
	return samples, dropped
}

// sourcePoint is one primary's value at an original bucket. Buckets where
// the primary had no sample hold zero with no reasons.
type sourcePoint struct {
	time    time.Time
	value   float64
	reasons []string
}

// Normalize converts sparse, irregularly timed samples into a dense series
// per primary over a shared evenly spaced display axis.
//
// Zero distinct timestamps yield StateNoData. A single timestamp yields a
// synthetic second point one hour later with the same values (StatePadded)
// so the frontend can draw a segment; no resampling is applied to it. With
// two or more timestamps the display axis runs from the first to the last
// original timestamp at fixed one-day steps, always force-including the
// exact final timestamp even when it misses the 24h grid, and values are
// linearly interpolated between the nearest original samples on each side.
func Normalize(samples []FlowSample) SeriesVM {
	buckets := distinctTimes(samples)

	switch len(buckets) {
	case 0:
		return SeriesVM{State: StateNoData, Axis: []time.Time{}, Traces: []Trace{}}
	case 1:
		return padSingle(samples, buckets[0])
	}

	axis := displayAxis(buckets[0], buckets[len(buckets)-1])

	traces := make([]Trace, 0, len(models.PrimaryOrder()))
	for _, p := range models.PrimaryOrder() {
		src := sourceSeries(samples, buckets, p)
		points := make([]Point, len(axis))
		for i, t := range axis {
			points[i] = Point{
				Timestamp: t,
				Value:     interpolate(src, t),
				Reasons:   nearestReasons(src, t),
			}
		}
		traces = append(traces, Trace{Primary: p, Color: p.Color(), Points: points})
	}

	return SeriesVM{
		State:  StateSeries,
		Axis:   axis,
		Traces: traces,
		YMax:   yCeiling(axis, traces),
	}
}

// distinctTimes returns the sorted set of source timestamps.
func distinctTimes(samples []FlowSample) []time.Time {
	seen := make(map[int64]time.Time, len(samples))
	for _, s := range samples {
		seen[s.Time.UnixNano()] = s.Time
	}
	out := make([]time.Time, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// displayAxis builds evenly spaced timestamps from first to last inclusive,
// appending the exact last timestamp when the one-day grid misses it.
func displayAxis(first, last time.Time) []time.Time {
	var axis []time.Time
	for t := first; !t.After(last); t = t.Add(displayStep) {
		axis = append(axis, t)
	}
	if !axis[len(axis)-1].Equal(last) {
		axis = append(axis, last)
	}
	return axis
}

// padSingle synthesizes a second bucket one hour after the only timestamp,
// with identical values, flagged so the resampler stays away from it.
func padSingle(samples []FlowSample, t0 time.Time) SeriesVM {
	axis := []time.Time{t0, t0.Add(singlePadStep)}

	traces := make([]Trace, 0, len(models.PrimaryOrder()))
	for _, p := range models.PrimaryOrder() {
		value, reasons := 0.0, []string{}
		for _, s := range samples {
			if s.Primary == p {
				value, reasons = s.Intensity, s.Reasons
				break
			}
		}
		traces = append(traces, Trace{
			Primary: p,
			Color:   p.Color(),
			Points: []Point{
				{Timestamp: axis[0], Value: value, Reasons: reasons},
				{Timestamp: axis[1], Value: value, Reasons: reasons},
			},
		})
	}

	return SeriesVM{
		State:  StatePadded,
		Axis:   axis,
		Traces: traces,
		YMax:   yCeiling(axis, traces),
	}
}

// sourceSeries densifies one primary over the original buckets: a bucket
// without a sample for this primary contributes zero.
func sourceSeries(samples []FlowSample, buckets []time.Time, p models.Primary) []sourcePoint {
	src := make([]sourcePoint, len(buckets))
	for i, b := range buckets {
		src[i] = sourcePoint{time: b}
		for _, s := range samples {
			if s.Primary == p && s.Time.Equal(b) {
				src[i].value = s.Intensity
				src[i].reasons = s.Reasons
				break
			}
		}
	}
	return src
}

// interpolate returns the value at t given the nearest source points at or
// before (p1) and at or after (p2). Both present and distinct in time means
// linear interpolation by fractional position; coincident means the exact
// value; only one side means that side; neither means zero.
func interpolate(src []sourcePoint, t time.Time) float64 {
	var p1, p2 *sourcePoint
	for i := len(src) - 1; i >= 0; i-- {
		if !src[i].time.After(t) {
			p1 = &src[i]
			break
		}
	}
	for i := range src {
		if !src[i].time.Before(t) {
			p2 = &src[i]
			break
		}
	}

	switch {
	case p1 != nil && p2 != nil:
		if p1.time.Equal(p2.time) {
			return p1.value
		}
		f := float64(t.Sub(p1.time)) / float64(p2.time.Sub(p1.time))
		return p1.value + f*(p2.value-p1.value)
	case p1 != nil:
		return p1.value
	case p2 != nil:
		return p2.value
	}
	return 0
}

// nearestReasons returns the annotations of the chronologically nearest
// source point; the earlier point wins an exact tie.
func nearestReasons(src []sourcePoint, t time.Time) []string {
	if len(src) == 0 {
		return []string{}
	}
	nearest := src[0]
	for _, sp := range src[1:] {
		if absDuration(sp.time.Sub(t)) < absDuration(nearest.time.Sub(t)) {
			nearest = sp
		}
	}
	if nearest.reasons == nil {
		return []string{}
	}
	return nearest.reasons
}

// yCeiling computes the y-axis ceiling: the largest stacked total across
// the display axis (never below 1.0) plus ten percent headroom.
func yCeiling(axis []time.Time, traces []Trace) float64 {
	yMax := 1.0
	for i := range axis {
		total := 0.0
		for _, tr := range traces {
			total += tr.Points[i].Value
		}
		if total > yMax {
			yMax = total
		}
	}
	return yMax * (1 + yAxisPad)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
