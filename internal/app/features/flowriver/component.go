// internal/app/features/flowriver/component.go
package flowriver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/app/system/graphstate"
	"github.com/dalemusser/stratamood/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Component owns the river chart's slice of state: it subscribes to the
// view/filter store, fetches flow samples on every emission, and keeps the
// latest normalized series for the handler to serve.
//
// Each emission bumps a generation counter carried by the fetch goroutine;
// a response is applied only while its generation is still current, so an
// older request resolving after a newer one can never overwrite fresher
// data.
type Component struct {
	client *metricsapi.Client
	logger *zap.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	gen atomic.Uint64

	mu      sync.RWMutex
	current SeriesVM
}

// NewComponent subscribes to state and performs the initial fetch for the
// replayed snapshot.
func NewComponent(state *graphstate.Store, client *metricsapi.Client, logger *zap.Logger) *Component {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Component{
		client:  client,
		logger:  logger.Named("flowriver"),
		ctx:     ctx,
		cancel:  cancel,
		current: SeriesVM{State: StateNoData, Axis: []time.Time{}, Traces: []Trace{}},
	}
	c.unsubscribe = state.Subscribe(c.onChange)
	return c
}

// onChange runs synchronously inside the store's dispatch; the fetch moves
// to its own goroutine immediately.
func (c *Component) onChange(snap graphstate.Snapshot) {
	gen := c.gen.Add(1)
	go c.fetch(gen, snap)
}

func (c *Component) fetch(gen uint64, snap graphstate.Snapshot) {
	fetchID := uuid.NewString()

	ctx, cancel := context.WithTimeout(c.ctx, timeouts.Medium())
	defer cancel()

	items, err := c.client.ThemeRiver(ctx, snap.View, snap.Filter)
	if err != nil {
		// Degrade to the empty series; the chart shows its no-data state.
		c.logger.Warn("flow fetch failed",
			zap.String("fetch_id", fetchID),
			zap.String("view", string(snap.View)),
			zap.Error(err))
		items = nil
	}

	samples, dropped := DecodeItems(items)
	if dropped > 0 {
		c.logger.Warn("dropped invalid flow rows",
			zap.String("fetch_id", fetchID),
			zap.Int("dropped", dropped))
	}

	c.apply(gen, Normalize(samples))
}

// apply installs vm unless a newer emission superseded this fetch.
func (c *Component) apply(gen uint64, vm SeriesVM) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		return
	}
	c.current = vm
}

// Current returns the latest normalized series.
func (c *Component) Current() SeriesVM {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Close releases the subscription and cancels any in-flight fetch so a
// torn-down component can never be updated again.
func (c *Component) Close() {
	c.unsubscribe()
	c.cancel()
}
