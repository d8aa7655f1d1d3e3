// Package client provides the HTTP client used to fetch catalog documents.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/rs/dnscache"
)

const (
	defaultUserAgent        = "marketplace"
	defaultTimeout          = 30 * time.Second
	defaultBreakerThreshold = 5
	dnsRefreshInterval      = 5 * time.Minute
	maxErrorBody            = 1024
)

// Client is an HTTP client for catalog sources.
//
// Requests dial through a caching DNS resolver, are optionally retried on
// 429 and 5xx responses, and are guarded by a circuit breaker per host.
type Client struct {
	http       *http.Client
	userAgent  string
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration

	*shared
}

// shared holds the state common to a client and its WithUserAgent copies.
type shared struct {
	threshold int64
	breakers  map[string]*circuit.Breaker
	mu        sync.RWMutex

	resolver    *dnscache.Resolver
	refreshOnce sync.Once
	stop        chan struct{}
	stopOnce    sync.Once
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithMaxRetries sets the maximum number of retries. Zero disables retries.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n < 0 {
			n = 0
		}
		c.maxRetries = n
	}
}

// WithBaseDelay sets the initial retry interval.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) {
		c.baseDelay = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithBreakerThreshold sets how many consecutive failures trip a host's
// circuit breaker. Zero disables circuit breaking.
func WithBreakerThreshold(n int) Option {
	return func(c *Client) {
		if n < 0 {
			n = 0
		}
		c.threshold = int64(n)
	}
}

// WithHTTPClient replaces the underlying HTTP client. The DNS-caching
// transport is not installed in that case.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// DefaultClient returns a client with sensible defaults:
// - 30s timeout
// - no retries
// - circuit breaker tripping after 5 consecutive failures
func DefaultClient() *Client {
	return NewClient()
}

// NewClient creates a new client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		userAgent: defaultUserAgent,
		baseDelay: 500 * time.Millisecond,
		maxDelay:  10 * time.Second,
		shared: &shared{
			threshold: defaultBreakerThreshold,
			breakers:  make(map[string]*circuit.Breaker),
			resolver:  &dnscache.Resolver{},
			stop:      make(chan struct{}),
		},
	}
	c.http = &http.Client{
		Timeout:   defaultTimeout,
		Transport: c.transport(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) transport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			c.refreshOnce.Do(func() { go c.refreshDNS() })
			ips, err := c.resolver.LookupHost(ctx, host)
			if err != nil {
				return nil, err
			}
			var lastErr error
			for _, ip := range ips {
				conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
				if err == nil {
					return conn, nil
				}
				lastErr = err
			}
			if lastErr == nil {
				lastErr = fmt.Errorf("no addresses for %s", host)
			}
			return nil, fmt.Errorf("failed to dial any resolved IP: %w", lastErr)
		},
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// refreshDNS runs from the first dial until Close.
func (c *Client) refreshDNS() {
	ticker := time.NewTicker(dnsRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.resolver.Refresh(true)
		case <-c.stop:
			return
		}
	}
}

// Close stops the background DNS refresher, started by the first dial,
// and releases idle connections.
func (c *Client) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
		c.http.CloseIdleConnections()
	})
}

// WithUserAgent returns a shallow copy of the client using a different
// User-Agent. Breakers and the DNS cache are shared with the original.
func (c *Client) WithUserAgent(ua string) *Client {
	return &Client{
		http:       c.http,
		userAgent:  ua,
		maxRetries: c.maxRetries,
		baseDelay:  c.baseDelay,
		maxDelay:   c.maxDelay,
		shared:     c.shared,
	}
}

// GetBody fetches rawURL and returns the full response body.
func (c *Client) GetBody(ctx context.Context, rawURL string) ([]byte, error) {
	host := hostOf(rawURL)
	breaker := c.breaker(host)

	var body []byte
	call := func() error {
		var err error
		body, err = c.getWithRetry(ctx, rawURL)
		return err
	}

	var err error
	if breaker != nil {
		err = breaker.Call(call, 0)
	} else {
		err = call()
	}
	if errors.Is(err, ErrBreakerOpen) {
		return nil, fmt.Errorf("circuit breaker open for %s: %w", host, err)
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

// GetJSON fetches rawURL and decodes the JSON response body into v.
func (c *Client) GetJSON(ctx context.Context, rawURL string, v any) error {
	body, err := c.GetBody(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &DecodeError{URL: rawURL, Err: err}
	}
	return nil
}

func (c *Client) getWithRetry(ctx context.Context, rawURL string) ([]byte, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.baseDelay
	b.MaxInterval = c.maxDelay
	b.Multiplier = 2.0
	b.MaxElapsedTime = 0
	b.Reset()

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(b.NextBackOff()):
			}
		}

		body, err := c.do(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			URL:        rawURL,
			Body:       string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// breaker returns or creates the circuit breaker for host. It returns nil
// when circuit breaking is disabled.
func (c *Client) breaker(host string) *circuit.Breaker {
	if c.threshold <= 0 {
		return nil
	}

	c.mu.RLock()
	b, ok := c.breakers[host]
	c.mu.RUnlock()
	if ok {
		return b
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.breakers[host]; ok {
		return b
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 30 * time.Second
	expBackoff.MaxInterval = 5 * time.Minute
	expBackoff.Multiplier = 2.0
	expBackoff.Reset()

	b = circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    expBackoff,
		ShouldTrip: circuit.ThresholdTripFunc(c.threshold),
	})
	c.breakers[host] = b
	return b
}

// BreakerState reports "open" or "closed" for every host contacted so far.
func (c *Client) BreakerState() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	states := make(map[string]string, len(c.breakers))
	for host, b := range c.breakers {
		if b.Tripped() {
			states[host] = "open"
		} else {
			states[host] = "closed"
		}
	}
	return states
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}
