package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultClient_UserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := DefaultClient()
	defer c.Close()
	_, _ = c.GetBody(context.Background(), server.URL)

	if gotUA != "marketplace" {
		t.Errorf("default User-Agent = %q, want %q", gotUA, "marketplace")
	}
}

func TestClient_WithUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := DefaultClient().WithUserAgent("custom-agent/2.0")
	defer c.Close()
	_, _ = c.GetBody(context.Background(), server.URL)

	if gotUA != "custom-agent/2.0" {
		t.Errorf("User-Agent = %q, want %q", gotUA, "custom-agent/2.0")
	}
}

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"demo","count":3}`))
	}))
	defer server.Close()

	c := DefaultClient()
	defer c.Close()

	var got struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := c.GetJSON(context.Background(), server.URL, &got); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if got.Name != "demo" || got.Count != 3 {
		t.Errorf("GetJSON = %+v, want name=demo count=3", got)
	}
}

func TestGetJSON_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := DefaultClient()
	defer c.Close()

	var got map[string]any
	err := c.GetJSON(context.Background(), server.URL, &got)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("GetJSON error = %v, want *DecodeError", err)
	}
}

func TestGetBody_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))
	defer server.Close()

	c := DefaultClient()
	defer c.Close()

	_, err := c.GetBody(context.Background(), server.URL+"/plugins.json")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("GetBody error = %v, want *HTTPError", err)
	}
	if !httpErr.IsNotFound() {
		t.Errorf("StatusCode = %d, want 404", httpErr.StatusCode)
	}
	if httpErr.Body != "missing" {
		t.Errorf("Body = %q, want %q", httpErr.Body, "missing")
	}
}

func TestGetBody_NoRetryByDefault(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := DefaultClient()
	defer c.Close()

	if _, err := c.GetBody(context.Background(), server.URL); err == nil {
		t.Fatal("expected error")
	}
	if n := attempts.Load(); n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestGetBody_RetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("success"))
	}))
	defer server.Close()

	c := NewClient(WithMaxRetries(3), WithBaseDelay(10*time.Millisecond))
	defer c.Close()

	body, err := c.GetBody(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetBody failed: %v", err)
	}
	if string(body) != "success" {
		t.Errorf("body = %q, want %q", string(body), "success")
	}
	if n := attempts.Load(); n != 3 {
		t.Errorf("attempts = %d, want 3", n)
	}
}

func TestGetBody_DoesNotRetryClientErrors(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient(WithMaxRetries(3), WithBaseDelay(10*time.Millisecond))
	defer c.Close()

	if _, err := c.GetBody(context.Background(), server.URL); err == nil {
		t.Fatal("expected error")
	}
	if n := attempts.Load(); n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestGetBody_BreakerTrips(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(WithBreakerThreshold(2))
	defer c.Close()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := c.GetBody(ctx, server.URL); err == nil {
			t.Fatalf("call %d: expected error", i)
		}
	}

	_, err := c.GetBody(ctx, server.URL)
	if !errors.Is(err, ErrBreakerOpen) {
		t.Fatalf("GetBody error = %v, want ErrBreakerOpen", err)
	}
	if n := attempts.Load(); n != 2 {
		t.Errorf("attempts = %d, want 2", n)
	}

	states := c.BreakerState()
	if len(states) != 1 {
		t.Fatalf("BreakerState has %d entries, want 1", len(states))
	}
	for host, state := range states {
		if state != "open" {
			t.Errorf("breaker for %s = %q, want open", host, state)
		}
	}
}

func TestGetBody_BreakerDisabled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(WithBreakerThreshold(0))
	defer c.Close()

	for i := 0; i < 10; i++ {
		_, err := c.GetBody(context.Background(), server.URL)
		if errors.Is(err, ErrBreakerOpen) {
			t.Fatalf("call %d: breaker opened while disabled", i)
		}
	}
	if len(c.BreakerState()) != 0 {
		t.Errorf("expected no breakers, got %v", c.BreakerState())
	}
}

func TestBuildURLs(t *testing.T) {
	urls := &BaseURLs{
		IssuesFn: func(repoURL string) string { return repoURL + "/issues" },
	}
	got := BuildURLs(urls, "https://example.com/a/b")

	if got["repository"] != "https://example.com/a/b" {
		t.Errorf("repository = %q", got["repository"])
	}
	if got["issues"] != "https://example.com/a/b/issues" {
		t.Errorf("issues = %q", got["issues"])
	}
	if _, ok := got["purl"]; ok {
		t.Errorf("purl should be omitted when empty, got %q", got["purl"])
	}
}

func TestNewClient_NoBackgroundWorkBeforeDial(t *testing.T) {
	before := runtime.NumGoroutine()

	clients := make([]*Client, 50)
	for i := range clients {
		clients[i] = NewClient()
	}
	if after := runtime.NumGoroutine(); after-before >= 10 {
		t.Errorf("goroutines grew from %d to %d creating idle clients", before, after)
	}

	for _, c := range clients {
		c.Close()
	}
}

func TestClient_CloseStopsRefresher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient()
	if _, err := c.GetBody(context.Background(), server.URL); err != nil {
		t.Fatalf("GetBody failed: %v", err)
	}
	c.Close()
	c.Close()

	select {
	case <-c.stop:
	default:
		t.Error("stop channel still open after Close")
	}
}
