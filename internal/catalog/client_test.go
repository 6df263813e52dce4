package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientFetchServices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/services" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("include"); got != "subservices" {
			t.Errorf("include = %s", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %s", got)
		}
		w.Header().Set("Content-Type", "application/vnd.api+json")
		w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	services, err := c.FetchServices(context.Background())
	if err != nil {
		t.Fatalf("FetchServices: %v", err)
	}
	if len(services) != 2 {
		t.Errorf("got %d services, want 2", len(services))
	}
}

func TestClientFetchServicesServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	if _, err := c.FetchServices(context.Background()); err == nil {
		t.Fatal("expected error on 502")
	}
}

func TestClientCircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	for i := 0; i < 5; i++ {
		c.FetchServices(context.Background())
	}

	// Breaker trips after 3 consecutive failures; later calls are
	// rejected without hitting the server.
	if calls != 3 {
		t.Errorf("server saw %d calls, want 3", calls)
	}
}
