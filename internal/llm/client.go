// Package llm is a thin chat-completion client. One request per call, no
// retry; callers decide whether a summary is worth retrying.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"scopeworks/pkg/circuitbreaker"
	"scopeworks/pkg/metrics"
	"scopeworks/pkg/trace"
)

// ErrEmptyCompletion is returned when the model replies with no choices.
var ErrEmptyCompletion = errors.New("completion contained no choices")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Client posts single-shot chat completions.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig()),
	}
}

// Complete sends one chat completion and returns the first choice's text.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	var content string

	err := c.cb.Execute(func() error {
		start := time.Now()

		b, marshalErr := json.Marshal(completionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: 0.2,
		})
		if marshalErr != nil {
			return marshalErr
		}

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/v1/chat/completions", bytes.NewReader(b))
		if reqErr != nil {
			return reqErr
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}
		if traceID := trace.FromContext(ctx); traceID != "" {
			req.Header.Set(trace.HeaderName(), traceID)
		}

		resp, doErr := c.httpClient.Do(req)
		latency := time.Since(start)

		if doErr != nil {
			metrics.RecordLLMCallLatency("error", latency)
			return doErr
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			metrics.RecordLLMCallLatency("5xx", latency)
			return fmt.Errorf("llm service 5xx: %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			metrics.RecordLLMCallLatency(fmt.Sprintf("%d", resp.StatusCode), latency)
			return fmt.Errorf("llm service error: %d", resp.StatusCode)
		}

		var completion completionResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&completion); decodeErr != nil {
			metrics.RecordLLMCallLatency("error", latency)
			return fmt.Errorf("decode completion: %w", decodeErr)
		}
		if len(completion.Choices) == 0 {
			metrics.RecordLLMCallLatency("empty", latency)
			return ErrEmptyCompletion
		}

		metrics.RecordLLMCallLatency("success", latency)
		content = completion.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	return content, nil
}
