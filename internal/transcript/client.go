// Package transcript fetches call-recording transcripts so a sales call
// can feed the same analyze/match pipeline as typed input.
package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"scopeworks/pkg/trace"
)

// Provider fetches the transcript text for one recorded call.
type Provider interface {
	Transcript(ctx context.Context, callID string) (string, error)
}

// Client is the HTTP provider implementation.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type transcriptResponse struct {
	CallID     string `json:"callId"`
	Transcript string `json:"transcript"`
}

func (c *Client) Transcript(ctx context.Context, callID string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/calls/"+callID+"/transcript", nil)
	if err != nil {
		return "", err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if traceID := trace.FromContext(ctx); traceID != "" {
		req.Header.Set(trace.HeaderName(), traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("transcript not found for call %s", callID)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcript service error: %d", resp.StatusCode)
	}

	var payload transcriptResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode transcript: %w", err)
	}
	return payload.Transcript, nil
}
