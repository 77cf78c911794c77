// internal/app/features/spider/axes_test.go
package spider

import (
	"testing"
	"time"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/app/system/graphstate"
	"github.com/dalemusser/stratamood/internal/domain/models"
	"github.com/dalemusser/stratamood/internal/testutil"
	"go.uber.org/zap"
)

func row(source, axis string, rating float64) metricsapi.SpiderRow {
	return metricsapi.SpiderRow{Source: source, Description: axis, Rating: rating}
}

func traceFor(vm RadarVM, source models.Source) []float64 {
	for _, tr := range vm.Traces {
		if tr.Source == source {
			return tr.Ratings
		}
	}
	return nil
}

func TestBuildRadarPicksFirstRowPerAxis(t *testing.T) {
	vm := BuildRadar([]metricsapi.SpiderRow{
		row("user", "f1", 7),
		row("user", "f1", 2), // duplicate axis, ignored
		row("user", "f3", 4),
		row("ai", "f1", 5),
	})

	user := traceFor(vm, models.SourceUser)
	if user[0] != 7 {
		t.Errorf("user f1 = %v, want first-seen 7", user[0])
	}
	if user[2] != 4 {
		t.Errorf("user f3 = %v, want 4", user[2])
	}
	if ai := traceFor(vm, models.SourceAI); ai[0] != 5 {
		t.Errorf("ai f1 = %v, want 5", ai[0])
	}
}

func TestBuildRadarMissingAxesAreZero(t *testing.T) {
	vm := BuildRadar([]metricsapi.SpiderRow{row("user", "f4", 9)})
	user := traceFor(vm, models.SourceUser)
	if len(user) != AxisCount {
		t.Fatalf("len(ratings) = %d, want %d", len(user), AxisCount)
	}
	for i, v := range user {
		want := 0.0
		if i == 3 {
			want = 9
		}
		if v != want {
			t.Errorf("user[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestBuildRadarAlwaysHasBothTraces(t *testing.T) {
	vm := BuildRadar(nil)
	if len(vm.Traces) != 2 {
		t.Fatalf("len(Traces) = %d, want 2", len(vm.Traces))
	}
	if traceFor(vm, models.SourceUser) == nil || traceFor(vm, models.SourceAI) == nil {
		t.Error("missing a source trace on empty input")
	}
	if len(vm.Labels) != AxisCount || vm.Scale != RatingMax {
		t.Errorf("Labels/Scale = %v/%v", vm.Labels, vm.Scale)
	}
}

func TestBuildRadarIgnoresUnknownSources(t *testing.T) {
	vm := BuildRadar([]metricsapi.SpiderRow{row("clinician", "f1", 8)})
	if got := traceFor(vm, models.SourceUser)[0]; got != 0 {
		t.Errorf("unknown source leaked into user trace: %v", got)
	}
}

func TestComponentFetchesRadar(t *testing.T) {
	fb := testutil.NewFakeBackend(t)
	fb.Respond("/metrics/spider-results", []metricsapi.SpiderRow{row("user", "f2", 6)})

	state := graphstate.New(models.ViewMonth)
	c := NewComponent(state, fb.Client(), zap.NewNop())
	t.Cleanup(c.Close)

	testutil.WaitFor(t, time.Second, func() bool {
		return traceFor(c.Current(), models.SourceUser)[1] == 6
	})
}
