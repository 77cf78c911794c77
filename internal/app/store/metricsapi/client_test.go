package metricsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/stratamood/internal/domain/models"
	"go.uber.org/zap"
)

func int64p(v int64) *int64 { return &v }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zap.NewNop())
}

func TestScopeQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter models.Filter
		want   string
	}{
		{"no scope", models.Filter{}, "view=week"},
		{"entry scope", models.Filter{EntryID: int64p(18)}, "entry_id=18&view=week"},
		{"session scope", models.Filter{SessionID: int64p(4)}, "session_id=4&view=week"},
		{"entry wins over session", models.Filter{EntryID: int64p(18), SessionID: int64p(4)}, "entry_id=18&view=week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scopeQuery(models.ViewWeek, tt.filter).Encode()
			if got != tt.want {
				t.Errorf("scopeQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestThemeRiverDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/themeriver" {
			t.Errorf("path = %q, want /themeriver", r.URL.Path)
		}
		if got := r.URL.Query().Get("view"); got != "day" {
			t.Errorf("view = %q, want day", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"timestamp": "2024-01-01T00:00:00Z", "emotion": "joy", "intensity": 0.2, "reasons": []string{"sunny walk"}},
			},
		})
	})

	items, err := c.ThemeRiver(context.Background(), models.ViewDay, models.Filter{})
	if err != nil {
		t.Fatalf("ThemeRiver() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Emotion != "joy" || items[0].Intensity != 0.2 {
		t.Errorf("item = %+v, want joy/0.2", items[0])
	}
}

func TestGetJSONStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := c.Histogram(context.Background(), models.ViewWeek, models.Filter{}); err == nil {
		t.Fatal("Histogram() error = nil, want status error")
	}
}

func TestMergeActivitiesSendsBody(t *testing.T) {
	var got MergeRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/metrics/activities/merge" {
			t.Errorf("got %s %s, want POST /metrics/activities/merge", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	err := c.MergeActivities(context.Background(), []string{"hiking", "hike"}, "Hiking")
	if err != nil {
		t.Fatalf("MergeActivities() error = %v", err)
	}
	if len(got.Sources) != 2 || got.Target != "Hiking" {
		t.Errorf("merge body = %+v, want 2 sources and target Hiking", got)
	}
}

func TestPlutchikResultsSetsSource(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("source"); got != "ai" {
			t.Errorf("source = %q, want ai", got)
		}
		json.NewEncoder(w).Encode([]WheelPoint{})
	})

	if _, err := c.PlutchikResults(context.Background(), models.ViewMonth, models.Filter{}, models.SourceAI); err != nil {
		t.Fatalf("PlutchikResults() error = %v", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-01-01T00:00:00Z", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-03T12:30:00", time.Date(2024, 1, 3, 12, 30, 0, 0, time.UTC), true},
		{"2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.ok != (err == nil) {
				t.Fatalf("ParseTimestamp(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if tt.ok && !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPingReportsTransportFailureOnly(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping() with 404 backend = %v, want nil", err)
	}

	down := New("http://127.0.0.1:1", time.Second, zap.NewNop())
	if err := down.Ping(context.Background()); err == nil {
		t.Error("Ping() against closed port = nil, want error")
	}
}
