// Package optimizer contains the HTTP client for the external route
// optimization service.
package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOptimizeTimeout = 5 * time.Second

// httpRouteOptimizer implements RouteOptimizer against an HTTP endpoint
// that accepts the stop list as JSON and answers with a JSON array of
// stop indices in suggested visiting order.
type httpRouteOptimizer struct {
	endpoint   string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the route optimizer client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewHTTPRouteOptimizer creates a route optimizer client from configuration.
func NewHTTPRouteOptimizer(params Params) (service.RouteOptimizer, error) {
	cfg := params.Config.Optimizer
	if cfg == nil || cfg.Endpoint == "" {
		return nil, errors.New("optimizer endpoint is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultOptimizeTimeout
	}

	return &httpRouteOptimizer{
		endpoint:   cfg.Endpoint,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}, nil
}

// Optimize sends the stop list to the optimization service and parses the
// suggested visiting order. The round-trip is bounded by the configured
// timeout so a stuck optimizer surfaces as an error instead of hanging.
func (o *httpRouteOptimizer) Optimize(ctx context.Context, req *service.OptimizeRequest) (*service.OptimizeResult, error) {
	rawRequest, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, o.endpoint, bytes.NewReader(rawRequest))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "optimizer request failed")
	}
	defer resp.Body.Close()

	rawResponse, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read optimizer response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("optimizer returned non-success status: %d", resp.StatusCode)
	}

	order, err := parseOrder(rawResponse)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("optimizer responded",
		slog.Int("stops", len(req.Stops)),
		slog.Int("orderEntries", len(order)))

	return &service.OptimizeResult{
		Order:       order,
		RawRequest:  rawRequest,
		RawResponse: rawResponse,
	}, nil
}

// parseOrder extracts the integer entries of the optimizer's JSON array.
// The service contract is loose, so non-integer entries (strings,
// fractional numbers, nested values) are dropped rather than treated as a
// failure. Range validation against the stop count is the caller's job.
func parseOrder(rawResponse []byte) ([]int, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(rawResponse, &entries); err != nil {
		return nil, errors.Wrap(err, "optimizer response is not a JSON array")
	}

	order := make([]int, 0, len(entries))
	for _, entry := range entries {
		// Decoding null into a Go value is a silent no-op, so parse via
		// json.Number and require a clean integer conversion.
		var num json.Number
		if err := json.Unmarshal(entry, &num); err != nil {
			continue
		}
		idx, err := strconv.Atoi(num.String())
		if err != nil {
			continue
		}
		order = append(order, idx)
	}

	return order, nil
}
