package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"scopeworks/internal/model"
	"scopeworks/pkg/circuitbreaker"
	"scopeworks/pkg/metrics"
	"scopeworks/pkg/trace"
)

// Client talks to the scoping-data API. Failures trip a circuit breaker
// so a dead catalog does not hold every matching request for the full
// timeout.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
}

func NewClient(baseURL, apiKey string) *Client {
	cbConfig := circuitbreaker.Config{
		FailureThreshold:    3,
		SuccessThreshold:    2,
		Timeout:             30 * time.Second,
		HalfOpenMaxRequests: 2,
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cb: circuitbreaker.NewCircuitBreaker(cbConfig),
	}
}

// FetchServices pulls the full catalog with subservices included.
func (c *Client) FetchServices(ctx context.Context) ([]model.Service, error) {
	var services []model.Service

	err := c.cb.Execute(func() error {
		start := time.Now()

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/v1/services?include=subservices", nil)
		if reqErr != nil {
			return reqErr
		}
		req.Header.Set("Accept", "application/vnd.api+json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}
		if traceID := trace.FromContext(ctx); traceID != "" {
			req.Header.Set(trace.HeaderName(), traceID)
		}

		resp, doErr := c.httpClient.Do(req)
		latency := time.Since(start)

		if doErr != nil {
			metrics.RecordCatalogFetchLatency("live", "error", latency)
			return doErr
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			metrics.RecordCatalogFetchLatency("live", "5xx", latency)
			return fmt.Errorf("catalog service 5xx: %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			metrics.RecordCatalogFetchLatency("live", fmt.Sprintf("%d", resp.StatusCode), latency)
			return fmt.Errorf("catalog service error: %d", resp.StatusCode)
		}

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			metrics.RecordCatalogFetchLatency("live", "error", latency)
			return fmt.Errorf("read catalog response: %w", readErr)
		}

		decoded, decodeErr := Decode(body)
		if decodeErr != nil {
			metrics.RecordCatalogFetchLatency("live", "error", latency)
			return decodeErr
		}

		metrics.RecordCatalogFetchLatency("live", "success", latency)
		services = decoded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	return services, nil
}
