// internal/app/features/wheel/component.go
package wheel

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/app/system/graphstate"
	"github.com/dalemusser/stratamood/internal/app/system/timeouts"
	"github.com/dalemusser/stratamood/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Component keeps the latest wheel traces. Every emission triggers four
// backend requests, primaries and dyads for each source, issued in
// parallel. A failed sub-request degrades only its own trace to empty;
// the other three render normally.
type Component struct {
	client *metricsapi.Client
	logger *zap.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	gen atomic.Uint64

	mu      sync.RWMutex
	current WheelVM
}

// NewComponent subscribes to state and performs the initial fetch for the
// replayed snapshot.
func NewComponent(state *graphstate.Store, client *metricsapi.Client, logger *zap.Logger) *Component {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Component{
		client:  client,
		logger:  logger.Named("wheel"),
		ctx:     ctx,
		cancel:  cancel,
		current: emptyVM(),
	}
	c.unsubscribe = state.Subscribe(c.onChange)
	return c
}

func emptyVM() WheelVM {
	return WheelVM{Traces: []Trace{
		{Source: models.SourceAI, Kind: kindPrimaries, Markers: []Marker{}},
		{Source: models.SourceAI, Kind: kindDyads, Markers: []Marker{}},
		{Source: models.SourceUser, Kind: kindPrimaries, Markers: []Marker{}},
		{Source: models.SourceUser, Kind: kindDyads, Markers: []Marker{}},
	}}
}

func (c *Component) onChange(snap graphstate.Snapshot) {
	gen := c.gen.Add(1)
	go c.fetch(gen, snap)
}

func (c *Component) fetch(gen uint64, snap graphstate.Snapshot) {
	fetchID := uuid.NewString()

	ctx, cancel := context.WithTimeout(c.ctx, timeouts.Medium())
	defer cancel()

	vm := emptyVM()
	var wg sync.WaitGroup
	for i := range vm.Traces {
		wg.Add(1)
		go func(tr *Trace) {
			defer wg.Done()
			markers, dropped, err := c.fetchTrace(ctx, snap, tr.Source, tr.Kind)
			if err != nil {
				c.logger.Warn("wheel trace fetch failed",
					zap.String("fetch_id", fetchID),
					zap.String("source", string(tr.Source)),
					zap.String("kind", tr.Kind),
					zap.Error(err))
				return
			}
			if dropped > 0 {
				c.logger.Warn("dropped invalid wheel rows",
					zap.String("fetch_id", fetchID),
					zap.String("source", string(tr.Source)),
					zap.String("kind", tr.Kind),
					zap.Int("dropped", dropped))
			}
			tr.Markers = markers
		}(&vm.Traces[i])
	}
	wg.Wait()

	c.apply(gen, vm)
}

func (c *Component) fetchTrace(ctx context.Context, snap graphstate.Snapshot, source models.Source, kind string) ([]Marker, int, error) {
	if kind == kindDyads {
		dyads, err := c.client.PlutchikDyads(ctx, snap.View, snap.Filter, source)
		if err != nil {
			return nil, 0, err
		}
		markers, dropped := BuildDyads(dyads)
		return markers, dropped, nil
	}
	points, err := c.client.PlutchikResults(ctx, snap.View, snap.Filter, source)
	if err != nil {
		return nil, 0, err
	}
	markers, dropped := BuildPrimaries(points)
	return markers, dropped, nil
}

func (c *Component) apply(gen uint64, vm WheelVM) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		return
	}
	c.current = vm
}

// Current returns the latest wheel traces.
func (c *Component) Current() WheelVM {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Close releases the subscription and cancels any in-flight fetches.
func (c *Component) Close() {
	c.unsubscribe()
	c.cancel()
}
