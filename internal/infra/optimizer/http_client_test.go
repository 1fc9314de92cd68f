package optimizer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/geo"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOptimizer(t *testing.T, endpoint string, timeout time.Duration) service.RouteOptimizer {
	t.Helper()

	client, err := NewHTTPRouteOptimizer(Params{
		Config: &config.Config{
			Optimizer: &config.OptimizerConfig{
				Endpoint: endpoint,
				Timeout:  timeout,
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client
}

func sampleRequest() *service.OptimizeRequest {
	return &service.OptimizeRequest{
		Origin: geo.Coordinate{Lat: 12.97, Lng: 77.59},
		Stops: []service.OptimizeStop{
			{SellerID: uuid.New(), SellerName: "shop-a", Location: geo.Coordinate{Lat: 12.98, Lng: 77.6}},
			{SellerID: uuid.New(), SellerName: "shop-b", Location: geo.Coordinate{Lat: 12.99, Lng: 77.61}},
		},
	}
}

func TestHTTPRouteOptimizer_Optimize(t *testing.T) {
	t.Parallel()

	t.Run("parses the suggested order and keeps the raw payloads", func(t *testing.T) {
		t.Parallel()

		var receivedBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedBody, _ = io.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[1,0]`))
		}))
		defer server.Close()

		client := newTestOptimizer(t, server.URL, time.Second)

		result, err := client.Optimize(context.Background(), sampleRequest())

		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, result.Order)
		assert.JSONEq(t, string(receivedBody), string(result.RawRequest))
		assert.Equal(t, `[1,0]`, string(result.RawResponse))

		var sent map[string]any
		require.NoError(t, json.Unmarshal(receivedBody, &sent))
		assert.Len(t, sent["stops"], 2)
	})

	t.Run("drops non-integer entries from the order", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[5, "x", 1, 2.5, null]`))
		}))
		defer server.Close()

		client := newTestOptimizer(t, server.URL, time.Second)

		result, err := client.Optimize(context.Background(), sampleRequest())

		require.NoError(t, err)
		// Range validation is left to the caller, so 5 survives here.
		assert.Equal(t, []int{5, 1}, result.Order)
	})

	t.Run("a non-array response is an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"order":[0,1]}`))
		}))
		defer server.Close()

		client := newTestOptimizer(t, server.URL, time.Second)

		_, err := client.Optimize(context.Background(), sampleRequest())

		require.Error(t, err)
	})

	t.Run("a non-success status is an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestOptimizer(t, server.URL, time.Second)

		_, err := client.Optimize(context.Background(), sampleRequest())

		require.Error(t, err)
	})

	t.Run("a stalled optimizer times out", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
			_, _ = w.Write([]byte(`[0]`))
		}))
		defer func() {
			close(release)
			server.Close()
		}()

		client := newTestOptimizer(t, server.URL, 50*time.Millisecond)

		start := time.Now()
		_, err := client.Optimize(context.Background(), sampleRequest())

		require.Error(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("requires an endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := NewHTTPRouteOptimizer(Params{
			Config: &config.Config{},
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		})

		require.Error(t, err)
	})
}
