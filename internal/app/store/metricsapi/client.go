// Package metricsapi is the data-access layer for the journal metrics
// backend. Every analytic endpoint takes the current view and optionally an
// entry or session scope; this package owns the wire shapes and the query
// encoding so the graph features stay free of HTTP plumbing.
package metricsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/stratamood/internal/domain/models"
	"go.uber.org/zap"
)

// Client talks to the metrics backend.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a client for the backend at baseURL. The timeout bounds each
// request on top of any caller context deadline.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// scopeQuery encodes view plus the active filter. Entry scope wins when
// both ids are present.
func scopeQuery(view models.View, filter models.Filter) url.Values {
	q := url.Values{}
	q.Set("view", string(view))
	if filter.EntryID != nil {
		q.Set("entry_id", strconv.FormatInt(*filter.EntryID, 10))
	} else if filter.SessionID != nil {
		q.Set("session_id", strconv.FormatInt(*filter.SessionID, 10))
	}
	return q
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("metricsapi: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("metricsapi: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("metricsapi: GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("metricsapi: decode %s: %w", path, err)
	}

	c.logger.Debug("metrics backend query", zap.String("path", path), zap.String("query", q.Encode()))
	return nil
}

// ThemeRiver fetches flow samples for the stacked river view.
func (c *Client) ThemeRiver(ctx context.Context, view models.View, filter models.Filter) ([]FlowItem, error) {
	var resp flowResponse
	if err := c.getJSON(ctx, "/themeriver", scopeQuery(view, filter), &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Histogram fetches daily activity counts for the weekly histogram.
func (c *Client) Histogram(ctx context.Context, view models.View, filter models.Filter) ([]HistogramDay, error) {
	var days []HistogramDay
	if err := c.getJSON(ctx, "/metrics/histogram", scopeQuery(view, filter), &days); err != nil {
		return nil, err
	}
	return days, nil
}

// MergeActivities asks the backend to rewrite all records labeled with any
// of sources to target. Local precondition checks belong to the caller;
// this is the raw request.
func (c *Client) MergeActivities(ctx context.Context, sources []string, target string) error {
	body, err := json.Marshal(MergeRequest{Sources: sources, Target: target})
	if err != nil {
		return fmt.Errorf("metricsapi: encode merge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/metrics/activities/merge", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("metricsapi: build merge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("metricsapi: POST /metrics/activities/merge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("metricsapi: merge: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}

// VAResults fetches valence/arousal scatter samples.
func (c *Client) VAResults(ctx context.Context, view models.View, filter models.Filter) ([]VAPoint, error) {
	var points []VAPoint
	if err := c.getJSON(ctx, "/va-results", scopeQuery(view, filter), &points); err != nil {
		return nil, err
	}
	return points, nil
}

// PlutchikResults fetches primary markers for one assessment source.
func (c *Client) PlutchikResults(ctx context.Context, view models.View, filter models.Filter, source models.Source) ([]WheelPoint, error) {
	q := scopeQuery(view, filter)
	q.Set("source", string(source))
	var points []WheelPoint
	if err := c.getJSON(ctx, "/plutchik-results", q, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// PlutchikDyads fetches dyad markers for one assessment source.
func (c *Client) PlutchikDyads(ctx context.Context, view models.View, filter models.Filter, source models.Source) ([]WheelDyad, error) {
	q := scopeQuery(view, filter)
	q.Set("source", string(source))
	var dyads []WheelDyad
	if err := c.getJSON(ctx, "/plutchik-dyads", q, &dyads); err != nil {
		return nil, err
	}
	return dyads, nil
}

// SpiderResults fetches radar-axis rows.
func (c *Client) SpiderResults(ctx context.Context, view models.View, filter models.Filter) ([]SpiderRow, error) {
	var rows []SpiderRow
	if err := c.getJSON(ctx, "/metrics/spider-results", scopeQuery(view, filter), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Ping checks that the backend answers HTTP at all. Any response, even an
// error status, counts as reachable; only transport failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("metricsapi: backend unreachable: %w", err)
	}
	io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
	resp.Body.Close()
	return nil
}

// BaseURL returns the configured backend base URL (for logging).
func (c *Client) BaseURL() string { return c.baseURL }
