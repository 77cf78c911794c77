// Package testutil provides utilities for testing, including a scriptable
// fake metrics backend for component tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/stratamood/internal/app/store/metricsapi"
	"go.uber.org/zap"
)

// FakeBackend is an httptest server that answers the metrics endpoints the
// graph components fetch from. Responses are set per path and may be
// swapped mid-test (after a merge, say); requests are recorded for
// assertions.
type FakeBackend struct {
	t   *testing.T
	srv *httptest.Server

	mu        sync.Mutex
	responses map[string]any
	failing   map[string]bool
	requests  []*http.Request
}

// NewFakeBackend starts an empty fake backend. Paths without a configured
// response return 404, which clients surface as fetch errors.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{
		t:         t,
		responses: make(map[string]any),
		failing:   make(map[string]bool),
	}
	fb.srv = httptest.NewServer(http.HandlerFunc(fb.serve))
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	fb.requests = append(fb.requests, r.Clone(r.Context()))
	failing := fb.failing[r.URL.Path]
	resp, ok := fb.responses[r.URL.Path]
	fb.mu.Unlock()

	if failing {
		http.Error(w, "backend failure", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		fb.t.Errorf("fake backend encode %s: %v", r.URL.Path, err)
	}
}

// Respond sets the JSON body returned for path.
func (fb *FakeBackend) Respond(path string, body any) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.responses[path] = body
	delete(fb.failing, path)
}

// Fail makes path answer 500 until Respond is called again.
func (fb *FakeBackend) Fail(path string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failing[path] = true
}

// Requests returns a copy of all requests seen so far.
func (fb *FakeBackend) Requests() []*http.Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]*http.Request, len(fb.requests))
	copy(out, fb.requests)
	return out
}

// RequestCount returns how many requests hit path.
func (fb *FakeBackend) RequestCount(path string) int {
	n := 0
	for _, r := range fb.Requests() {
		if r.URL.Path == path {
			n++
		}
	}
	return n
}

// Client returns a metricsapi client pointed at the fake backend.
func (fb *FakeBackend) Client() *metricsapi.Client {
	return metricsapi.New(fb.srv.URL, 5*time.Second, zap.NewNop())
}

// URL returns the fake backend's base URL.
func (fb *FakeBackend) URL() string { return fb.srv.URL }

// WaitFor polls cond until it returns true or the deadline passes.
// Component fetches run on their own goroutines, so tests wait on the
// observable result rather than on scheduling.
func WaitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
