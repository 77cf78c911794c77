// internal/app/features/spider/axes.go
package spider

import (
	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/domain/models"
)

// BuildRadar picks one rating per (source, axis) pair from backend rows,
// taking the first row when an axis appears more than once and zero when
// it never appears. Both source traces are always present so the chart
// can toggle either independently.
func BuildRadar(rows []metricsapi.SpiderRow) RadarVM {
	type key struct {
		source models.Source
		axis   string
	}
	picked := make(map[key]float64, len(rows))
	for _, row := range rows {
		source := models.Source(row.Source)
		if source != models.SourceAI && source != models.SourceUser {
			continue
		}
		k := key{source, row.Description}
		if _, ok := picked[k]; ok {
			continue
		}
		picked[k] = row.Rating
	}

	vm := RadarVM{
		Labels: AxisLabels,
		Scale:  RatingMax,
	}
	for _, source := range []models.Source{models.SourceUser, models.SourceAI} {
		ratings := make([]float64, AxisCount)
		for i, axis := range axisKeys {
			ratings[i] = picked[key{source, axis}]
		}
		vm.Traces = append(vm.Traces, RadarTrace{Source: source, Ratings: ratings})
	}
	return vm
}
