// Package graphstate holds the view/filter selection shared by every graph
// component. It is the single source of truth the charts consult: each chart
// subscribes once, receives the current value immediately, and re-fetches on
// every subsequent change.
//
// The store is constructed in bootstrap and passed to each component
// explicitly; there is no package-level instance.
package graphstate

import (
	"sync"

	"github.com/dalemusser/stratamood/internal/domain/models"
)

// Snapshot is an immutable (view, filter) pair as seen at one point in time.
type Snapshot struct {
	View   models.View   `json:"view"`
	Filter models.Filter `json:"filter"`
}

// Equal reports whether two snapshots carry the same values.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.View == o.View && s.Filter.Equal(o.Filter)
}

// Callback receives a snapshot. Callbacks run synchronously on the calling
// goroutine of SetView/SetFilter (or Subscribe for the replay), so they must
// not block; components hand the fetch work to a goroutine of their own.
type Callback func(Snapshot)

type subscriber struct {
	id int
	fn Callback
}

// Store is the reactive view/filter state. Mutation and subscriber-list
// changes are serialized by one mutex, so reads never observe a torn pair
// and subscribers are notified in subscription order.
type Store struct {
	mu   sync.Mutex
	cur  Snapshot
	subs []subscriber
	next int
}

// New creates a store with the given initial view and an empty filter.
func New(initial models.View) *Store {
	return &Store{cur: Snapshot{View: initial}}
}

// Snapshot returns the current (view, filter) pair.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// View returns the current view.
func (s *Store) View() models.View {
	return s.Snapshot().View
}

// Filter returns the current filter.
func (s *Store) Filter() models.Filter {
	return s.Snapshot().Filter
}

// SetView replaces the current view and notifies subscribers. Setting the
// view it already holds is a no-op: subscribers do not re-fire when neither
// component of the snapshot changed.
func (s *Store) SetView(v models.View) {
	s.mu.Lock()
	if s.cur.View == v {
		s.mu.Unlock()
		return
	}
	s.cur.View = v
	snap, subs := s.cur, s.copySubs()
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}

// SetFilter replaces the whole filter record (no field merge) and notifies
// subscribers. Filters are compared by value: replacing a filter with an
// equal one, including two empty filters, does not re-fire.
func (s *Store) SetFilter(f models.Filter) {
	s.mu.Lock()
	if s.cur.Filter.Equal(f) {
		s.mu.Unlock()
		return
	}
	s.cur.Filter = f
	snap, subs := s.cur, s.copySubs()
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}

// Subscribe registers fn and immediately replays the current snapshot to it.
// The returned cancel func removes the subscription and is safe to call more
// than once. Subscribers are independent: ordering is guaranteed only
// relative to registration, never between callbacks of different
// subscribers.
func (s *Store) Subscribe(fn Callback) (cancel func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	snap := s.cur
	s.mu.Unlock()

	fn(snap)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// copySubs returns the subscriber list as of now. Callers hold s.mu.
// Dispatch happens on the copy so a callback may subscribe or cancel
// without deadlocking.
func (s *Store) copySubs() []subscriber {
	out := make([]subscriber, len(s.subs))
	copy(out, s.subs)
	return out
}
