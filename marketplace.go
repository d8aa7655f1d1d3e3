// Package marketplace provides the SharwAPI plugin catalog: fetching the
// published plugin collection, caching it with its loading and error state,
// and the user preferences shown alongside it.
//
// Basic usage:
//
//	import (
//		"context"
//		"github.com/sharwapi/marketplace"
//		_ "github.com/sharwapi/marketplace/all"
//	)
//
//	src, err := marketplace.New("remote", "", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store := marketplace.NewCatalog(src)
//	if err := store.FetchPlugins(context.Background()); err != nil {
//		log.Println(store.Err())
//	}
//	for _, p := range store.PluginList() {
//		fmt.Println(p.ID, p.Name)
//	}
package marketplace

import (
	"time"

	"github.com/git-pkgs/purl"
	"github.com/sharwapi/marketplace/catalog"
	"github.com/sharwapi/marketplace/client"
	"github.com/sharwapi/marketplace/internal/core"
	"github.com/sharwapi/marketplace/internal/mock"
	"github.com/sharwapi/marketplace/internal/remote"
)

// Re-export types from internal/core
type (
	// Source is the interface implemented by every catalog provider.
	Source = core.Source

	// PluginMeta describes one plugin.
	PluginMeta = core.PluginMeta

	// PluginCollection maps plugin identifiers to their metadata.
	PluginCollection = core.PluginCollection

	// PluginEntity is a PluginMeta decorated with its identifier.
	PluginEntity = core.PluginEntity
)

// Re-export types from client
type (
	// Client is the HTTP client used by remote sources.
	Client = client.Client

	// URLBuilder constructs URLs related to a plugin repository.
	URLBuilder = client.URLBuilder
)

// Catalog is the cached plugin collection of one source.
type Catalog = catalog.Store

// Re-export errors
var (
	ErrUnknownSource = core.ErrUnknownSource
	ErrBreakerOpen   = client.ErrBreakerOpen
)

// Error types
type (
	HTTPError           = client.HTTPError
	FetchTransportError = core.FetchTransportError
	FetchStatusError    = core.FetchStatusError
	ParseError          = core.ParseError
	MockLoadError       = core.MockLoadError
)

// New creates a source by name.
// If baseURL is empty, the source's default URL is used.
// If client is nil, a source that needs one creates it; release it with
// CloseSource.
//
// Registered sources: "remote", "mock"
func New(name string, baseURL string, c *Client) (Source, error) {
	return core.New(name, baseURL, c)
}

// CloseSource releases resources a source owns, such as the client a
// remote source creates when given a nil one.
func CloseSource(src Source) error {
	return core.CloseSource(src)
}

// NewRemoteSource returns a source reading the collection from url. With a
// nil client the source owns a DefaultClient; release it with CloseSource.
func NewRemoteSource(url string, c *Client) Source {
	return remote.New(url, c)
}

// NewMockSource returns a source serving the built-in dataset after delay.
func NewMockSource(delay time.Duration) Source {
	return mock.New(delay)
}

// NewCatalog returns an empty catalog backed by src.
func NewCatalog(src Source) *Catalog {
	return catalog.New(src)
}

// DefaultClient returns a client with sensible defaults:
// - 30s timeout
// - no retries
// - per-host circuit breaker tripping after 5 consecutive failures
func DefaultClient() *Client {
	return client.DefaultClient()
}

// NewClient creates a new client with the given options.
func NewClient(opts ...Option) *Client {
	return client.NewClient(opts...)
}

// Option configures a Client.
type Option = client.Option

// WithTimeout sets the HTTP client timeout.
var WithTimeout = client.WithTimeout

// WithMaxRetries sets the maximum number of retries.
var WithMaxRetries = client.WithMaxRetries

// WithUserAgent sets the User-Agent header.
var WithUserAgent = client.WithUserAgent

// WithBreakerThreshold sets the consecutive failures that trip a host's
// breaker. Zero disables the breaker.
var WithBreakerThreshold = client.WithBreakerThreshold

// SupportedSources returns all registered source names.
// Note: sources must be imported to be registered.
func SupportedSources() []string {
	return core.SupportedSources()
}

// DefaultURL returns the default URL for a source.
func DefaultURL(name string) string {
	return core.DefaultURL(name)
}

// BuildURLs returns a map of all non-empty URLs for a plugin repository.
// Keys are "repository", "issues", and "purl".
func BuildURLs(urls URLBuilder, repoURL string) map[string]string {
	return client.BuildURLs(urls, repoURL)
}

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// ParsePURL parses a Package URL string such as "pkg:github/mock/auth-helper".
func ParsePURL(purlStr string) (*PURL, error) {
	return purl.Parse(purlStr)
}
