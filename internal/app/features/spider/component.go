// internal/app/features/spider/component.go
package spider

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

// Component keeps the latest radar traces, one fetch per store emission
// with the shared generation rule.
type Component struct {
	client *metricsapi.Client
	logger *zap.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	gen atomic.Uint64

	mu      sync.RWMutex
	current RadarVM
}

// NewComponent subscribes to state and performs the initial fetch for the
// replayed snapshot.
func NewComponent(state *graphstate.Store, client *metricsapi.Client, logger *zap.Logger) *Component {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Component{
		client:  client,
		logger:  logger.Named("spider"),
		ctx:     ctx,
		cancel:  cancel,
		current: BuildRadar(nil),
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

	rows, err := c.client.SpiderResults(ctx, snap.View, snap.Filter)
	if err != nil {
		c.logger.Warn("radar fetch failed",
			zap.String("fetch_id", fetchID),
			zap.String("view", string(snap.View)),
			zap.Error(err))
		rows = nil
	}

	c.apply(gen, BuildRadar(rows))
}

func (c *Component) apply(gen uint64, vm RadarVM) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		return
	}
	c.current = vm
}

// Current returns the latest radar traces.
func (c *Component) Current() RadarVM {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Close releases the subscription and cancels any in-flight fetch.
func (c *Component) Close() {
	c.unsubscribe()
	c.cancel()
}
