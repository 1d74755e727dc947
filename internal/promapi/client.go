// Package promapi is a minimal read-only client for the Prometheus HTTP
// API (/api/v1). It decodes the response envelope and leaves result
// payloads raw for the renderer to normalize.
package promapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/promq-io/promq/internal/config"
)

const defaultTimeout = 30 * time.Second

// Client issues read-only queries against one Prometheus-compatible server.
type Client struct {
	baseURL    string
	auth       config.AuthConfig
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a client for the server described by cfg.
func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.ServerURL, "/"),
		auth:       cfg.Auth,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "promapi").Logger(),
	}
}

// Query runs an instant query evaluated at ts (Unix seconds).
func (c *Client) Query(ctx context.Context, expr string, ts int64) (*QueryData, error) {
	params := url.Values{}
	params.Set("query", expr)
	params.Set("time", strconv.FormatInt(ts, 10))

	data, err := c.get(ctx, "/api/v1/query", params)
	if err != nil {
		return nil, err
	}
	return decodeQueryData(data)
}

// QueryRange runs a range query over [start, end] at the given step, all in
// Unix seconds.
func (c *Client) QueryRange(ctx context.Context, expr string, start, end, step int64) (*QueryData, error) {
	params := url.Values{}
	params.Set("query", expr)
	params.Set("start", strconv.FormatInt(start, 10))
	params.Set("end", strconv.FormatInt(end, 10))
	params.Set("step", strconv.FormatInt(step, 10))

	data, err := c.get(ctx, "/api/v1/query_range", params)
	if err != nil {
		return nil, err
	}
	return decodeQueryData(data)
}

// LabelNames returns all label names, optionally restricted to a time window.
func (c *Client) LabelNames(ctx context.Context, start, end *int64) ([]string, error) {
	params := url.Values{}
	addWindow(params, start, end)

	data, err := c.get(ctx, "/api/v1/labels", params)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("failed to decode label names: %w", err)
	}
	return names, nil
}

// LabelValues returns the values of one label, optionally restricted to a
// time window.
func (c *Client) LabelValues(ctx context.Context, name string, start, end *int64) ([]string, error) {
	params := url.Values{}
	addWindow(params, start, end)

	data, err := c.get(ctx, "/api/v1/label/"+url.PathEscape(name)+"/values", params)
	if err != nil {
		return nil, err
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode label values: %w", err)
	}
	return values, nil
}

// Series returns the label sets of series matching the given selectors.
func (c *Client) Series(ctx context.Context, matchers []string, start, end *int64) ([]LabelSet, error) {
	params := url.Values{}
	for _, m := range matchers {
		params.Add("match[]", m)
	}
	addWindow(params, start, end)

	data, err := c.get(ctx, "/api/v1/series", params)
	if err != nil {
		return nil, err
	}

	var sets []LabelSet
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("failed to decode series: %w", err)
	}
	return sets, nil
}

// Targets returns the current scrape target state.
func (c *Client) Targets(ctx context.Context) (*TargetsData, error) {
	data, err := c.get(ctx, "/api/v1/targets", nil)
	if err != nil {
		return nil, err
	}

	var targets TargetsData
	if err := json.Unmarshal(data, &targets); err != nil {
		return nil, fmt.Errorf("failed to decode targets: %w", err)
	}
	return &targets, nil
}

// get issues one GET request and unwraps the API envelope.
// A payload with status "error" surfaces as *ServerError; anything below
// that level surfaces as *TransportError.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}

	switch c.auth.Type {
	case config.AuthTypeBasic:
		req.SetBasicAuth(c.auth.Username, c.auth.Password)
	case config.AuthTypeBearer:
		req.Header.Set("Authorization", "Bearer "+c.auth.Token)
	}

	c.logger.Debug().Str("url", reqURL).Msg("querying server")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}

	// Error responses still carry the JSON envelope, so decode before
	// looking at the HTTP status.
	var envelope APIResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &TransportError{URL: reqURL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
		}
		return nil, &TransportError{URL: reqURL, Err: fmt.Errorf("invalid response body: %w", err)}
	}

	if envelope.Status == StatusError {
		return nil, &ServerError{ErrorType: envelope.ErrorType, Message: envelope.Error}
	}

	for _, w := range envelope.Warnings {
		c.logger.Warn().Str("url", reqURL).Msg(w)
	}

	return envelope.Data, nil
}

func decodeQueryData(data json.RawMessage) (*QueryData, error) {
	var qd QueryData
	if err := json.Unmarshal(data, &qd); err != nil {
		return nil, fmt.Errorf("failed to decode query result: %w", err)
	}
	return &qd, nil
}

func addWindow(params url.Values, start, end *int64) {
	if start != nil {
		params.Set("start", strconv.FormatInt(*start, 10))
	}
	if end != nil {
		params.Set("end", strconv.FormatInt(*end, 10))
	}
}
