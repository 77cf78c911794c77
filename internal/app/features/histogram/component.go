// internal/app/features/histogram/component.go
package histogram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"github.com/dalemusser/stratamood/internal/app/system/graphstate"
	"github.com/dalemusser/stratamood/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Merge precondition failures, rejected locally before any backend call.
var (
	ErrTooFewSources = errors.New("merge needs at least 2 distinct source labels")
	ErrEmptyTarget   = errors.New("merge target must not be empty")
	ErrMergeInFlight = errors.New("a merge is already in progress")
)

// Component owns the weekly histogram state: the partitioned week grid for
// the latest fetch plus the merge-in-flight flag. The same generation rule
// as the other chart components keeps stale responses out.
type Component struct {
	state  *graphstate.Store
	client *metricsapi.Client
	logger *zap.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()

	gen     atomic.Uint64
	merging atomic.Bool

	mu   sync.RWMutex
	grid *WeekGrid
}

// NewComponent subscribes to state and performs the initial fetch.
func NewComponent(state *graphstate.Store, client *metricsapi.Client, logger *zap.Logger) *Component {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Component{
		state:  state,
		client: client,
		logger: logger.Named("histogram"),
		ctx:    ctx,
		cancel: cancel,
		grid:   Partition(nil, false),
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

	days, err := c.client.Histogram(ctx, snap.View, snap.Filter)
	if err != nil {
		c.logger.Warn("histogram fetch failed",
			zap.String("fetch_id", fetchID),
			zap.String("view", string(snap.View)),
			zap.Error(err))
		days = nil
	}

	c.apply(gen, Partition(days, snap.Filter.EntryID != nil))
}

func (c *Component) apply(gen uint64, grid *WeekGrid) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen.Load() {
		return
	}
	c.grid = grid
}

// Current returns the view model for the selected week.
func (c *Component) Current() GridVM {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return GridVM{
		Weeks:        c.grid.Weeks(),
		SelectedWeek: c.grid.Selected(),
		Label:        c.grid.Label(),
		Days:         c.grid.Days(),
		Merging:      c.merging.Load(),
	}
}

// PrevWeek moves the cursor one week older.
func (c *Component) PrevWeek() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.PrevWeek()
}

// NextWeek moves the cursor one week newer.
func (c *Component) NextWeek() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.NextWeek()
}

// Merge rewrites all records matching the selected source labels (matched
// case-insensitively, deduplicated by folding) to the target label, then
// re-fetches with the store's current view/filter so the grid reflects the
// rewrite. Preconditions are checked before anything leaves the process;
// only one merge may be in flight at a time.
func (c *Component) Merge(ctx context.Context, sources []string, target string) error {
	distinct := foldDistinct(sources)
	if len(distinct) < 2 {
		return ErrTooFewSources
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyTarget
	}

	if !c.merging.CompareAndSwap(false, true) {
		return ErrMergeInFlight
	}
	defer c.merging.Store(false)

	if err := c.client.MergeActivities(ctx, distinct, target); err != nil {
		c.logger.Warn("activity merge failed",
			zap.Strings("sources", distinct),
			zap.String("target", target),
			zap.Error(err))
		return fmt.Errorf("merge activities: %w", err)
	}

	// Refresh synchronously with the store's current snapshot so the
	// caller sees the merged grid.
	snap := c.state.Snapshot()
	gen := c.gen.Add(1)
	c.fetch(gen, snap)
	return nil
}

// foldDistinct lowercases/folds labels and removes duplicates and blanks,
// preserving first-seen order.
func foldDistinct(sources []string) []string {
	seen := make(map[string]bool, len(sources))
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		folded := text.Fold(strings.TrimSpace(s))
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, folded)
	}
	return out
}

// Close releases the subscription and cancels in-flight fetches.
func (c *Component) Close() {
	c.unsubscribe()
	c.cancel()
}
