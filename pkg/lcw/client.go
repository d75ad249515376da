// Package lcw provides the LiveCoinWatch market-data gateway: an HTTP
// client for the upstream API, a structured error taxonomy, and the
// cached operations exposed to the routing layer.
package lcw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/ammarcodes29/cryptoAPI/pkg/logging"
)

// Prometheus metrics for upstream calls.
var (
	lcwRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lcw_requests_total",
		Help: "Total upstream requests by endpoint and status",
	}, []string{"endpoint", "status"})

	lcwRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lcw_request_duration_seconds",
		Help:    "Upstream request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	lcwErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lcw_errors_total",
		Help: "Total upstream errors by kind",
	}, []string{"kind"})
)

// defaultTimeout bounds every upstream call. Exceeding it surfaces as
// KindTimeout, never as a hang.
const defaultTimeout = 10 * time.Second

// Client issues POST requests to the LiveCoinWatch API and classifies
// the outcome. It performs exactly one attempt per call; retries are a
// caller decision this layer never makes.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
}

// NewClient creates an upstream client for the given base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logging.NewLogger("lcw-client"),
	}
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// post sends one JSON request to <base>/<endpoint> and returns the raw
// 200 body. Every failure path returns an *Error with a classified kind.
func (c *Client) post(ctx context.Context, endpoint string, body any) ([]byte, error) {
	startTime := time.Now()
	defer func() {
		lcwRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	url := c.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	c.logger.Debug().
		Str("endpoint", endpoint).
		Msg("Executing upstream request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		perr := c.classifyTransportError(err)
		lcwErrorsTotal.WithLabelValues(string(perr.Kind)).Inc()
		lcwRequestsTotal.WithLabelValues(endpoint, string(perr.Kind)).Inc()
		c.logger.Error().
			Err(err).
			Str("endpoint", endpoint).
			Str("kind", string(perr.Kind)).
			Msg("Upstream request failed")
		return nil, perr
	}
	defer resp.Body.Close()

	lcwRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		perr := classifyStatus(resp)
		lcwErrorsTotal.WithLabelValues(string(perr.Kind)).Inc()
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("kind", string(perr.Kind)).
			Msg("Upstream request error")
		return nil, perr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		perr := &Error{Kind: KindNetwork, Message: "reading upstream response", Err: err}
		lcwErrorsTotal.WithLabelValues(string(KindNetwork)).Inc()
		return nil, perr
	}

	return data, nil
}

// classifyTransportError maps a failed round trip to timeout or network.
func (c *Client) classifyTransportError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{
			Kind:    KindTimeout,
			Message: "request timeout - API may be unavailable",
			Err:     err,
		}
	}
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("network error: %v", err),
		Err:     err,
	}
}

// classifyStatus maps a non-200 upstream response to an error kind. The
// body is consulted only for the upstream-provided description on
// unclassified statuses.
func classifyStatus(resp *http.Response) *Error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &Error{
			Kind:       KindUnauthorized,
			StatusCode: resp.StatusCode,
			Message:    "invalid API key or unauthorized access",
		}
	case http.StatusNotFound:
		return &Error{
			Kind:       KindNotFound,
			StatusCode: resp.StatusCode,
			Message:    "endpoint not found",
		}
	case http.StatusTooManyRequests:
		return &Error{
			Kind:       KindRateLimited,
			StatusCode: resp.StatusCode,
			Message:    "rate limit exceeded",
		}
	default:
		description := "unknown error"
		if body, err := io.ReadAll(resp.Body); err == nil && len(body) > 0 {
			var envelope errorPayload
			if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Description != "" {
				description = envelope.Error.Description
			}
		}
		return &Error{
			Kind:       KindUpstream,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API error (%d): %s", resp.StatusCode, description),
		}
	}
}
