// internal/app/features/vascatter/component.go
package vascatter

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/app/system/graphstate"
	"github.com/dalemusser/stratamood/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Component keeps the latest aggregated valence/arousal plane. Same
// lifecycle as the other chart components: subscribe, fetch per emission,
// discard responses superseded by a newer generation.
type Component struct {
	client *metricsapi.Client
	logger *zap.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	gen atomic.Uint64

	mu      sync.RWMutex
	current PlaneVM
}

// NewComponent subscribes to state and performs the initial fetch for the
// replayed snapshot.
func NewComponent(state *graphstate.Store, client *metricsapi.Client, logger *zap.Logger) *Component {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Component{
		client:  client,
		logger:  logger.Named("vascatter"),
		ctx:     ctx,
		cancel:  cancel,
		current: PlaneVM{Bubbles: []Bubble{}},
	}
	c.unsubscribe = state.Subscribe(c.onChange)
	return c
}

func (c *Component) onChange(snap graphstate.Snapshot) {
	gen := c.gen.Add(1)
	go c.fetch(gen, snap)
}

func (c *Component) fetch(gen uint64, snap graphstate.Snapshot) {
	fetchID := uuid.NewString()

	ctx, cancel := context.WithTimeout(c.ctx, timeouts.Medium())
	defer cancel()

	points, err := c.client.VAResults(ctx, snap.View, snap.Filter)
	if err != nil {
		c.logger.Warn("scatter fetch failed",
			zap.String("fetch_id", fetchID),
			zap.String("view", string(snap.View)),
			zap.Error(err))
		points = nil
	}

	c.apply(gen, PlaneVM{Bubbles: Aggregate(points)})
}

func (c *Component) apply(gen uint64, vm PlaneVM) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		return
	}
	c.current = vm
}

// Current returns the latest aggregated plane.
func (c *Component) Current() PlaneVM {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Close releases the subscription and cancels any in-flight fetch.
func (c *Component) Close() {
	c.unsubscribe()
	c.cancel()
}
