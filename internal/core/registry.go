package core

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Source is the interface implemented by every catalog provider.
type Source interface {
	// Name returns the registered name of the source (e.g. "remote", "mock").
	Name() string

	// FetchCollection retrieves the full plugin collection.
	FetchCollection(ctx context.Context) (PluginCollection, error)
}

// Factory creates a source for a given base URL.
type Factory func(baseURL string, client *Client) Source

var (
	factories = make(map[string]Factory)
	defaults  = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the global registry.
// defaultURL is the location used when New is called with an empty baseURL.
func Register(name string, defaultURL string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[name] = factory
	defaults[name] = defaultURL
}

// New creates a new source by name.
// If baseURL is empty, the default URL is used.
// If client is nil, a source that needs one creates its own and then
// implements io.Closer; see CloseSource.
func New(name string, baseURL string, client *Client) (Source, error) {
	mu.RLock()
	factory, ok := factories[name]
	defaultURL := defaults[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}

	if baseURL == "" {
		baseURL = defaultURL
	}

	return factory(baseURL, client), nil
}

// SupportedSources returns all registered source names, sorted.
func SupportedSources() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultURL returns the default URL for a source.
func DefaultURL(name string) string {
	mu.RLock()
	defer mu.RUnlock()
	return defaults[name]
}

// CloseSource releases resources owned by src, such as a client it
// created itself. Sources without any are left alone.
func CloseSource(src Source) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
