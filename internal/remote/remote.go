// Package remote provides a catalog source backed by a JSON document
// served over HTTP.
package remote

import (
	"context"
	"errors"
	"strings"

	"github.com/sharwapi/marketplace/client"
	"github.com/sharwapi/marketplace/internal/core"
)

const (
	DefaultURL = "https://raw.githubusercontent.com/sharwapi/sharwapi_Plugins_Collection/main/plugins.json"
	name       = "remote"
)

func init() {
	core.Register(name, DefaultURL, func(baseURL string, c *core.Client) core.Source {
		return New(baseURL, c)
	})
}

type Source struct {
	url    string
	client *core.Client
	owned  bool
}

// New returns a source reading url with c. A nil c is replaced by a
// DefaultClient owned by the source and released by Close.
func New(url string, c *core.Client) *Source {
	if url == "" {
		url = DefaultURL
	}
	owned := false
	if c == nil {
		c = core.DefaultClient()
		owned = true
	}
	return &Source{
		url:    strings.TrimSpace(url),
		client: c,
		owned:  owned,
	}
}

// Close releases the client if the source created it. A client passed to
// New stays open for its owner.
func (s *Source) Close() error {
	if s.owned {
		s.client.Close()
	}
	return nil
}

func (s *Source) Name() string {
	return name
}

// URL returns the location of the catalog document.
func (s *Source) URL() string {
	return s.url
}

func (s *Source) FetchCollection(ctx context.Context) (core.PluginCollection, error) {
	var resp core.PluginCollection
	if err := s.client.GetJSON(ctx, s.url, &resp); err != nil {
		return nil, s.classify(err)
	}
	if resp == nil {
		// A literal "null" body decodes without error but is not a collection.
		return nil, &core.ParseError{URL: s.url, Err: errors.New("document is null")}
	}
	return resp, nil
}

func (s *Source) classify(err error) error {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return &core.FetchStatusError{URL: s.url, StatusCode: httpErr.StatusCode}
	}
	var decErr *client.DecodeError
	if errors.As(err, &decErr) {
		return &core.ParseError{URL: s.url, Err: decErr.Err}
	}
	return &core.FetchTransportError{URL: s.url, Err: err}
}
