// Package mock provides a catalog source serving a built-in dataset after
// a simulated network delay.
package mock

import (
	"context"
	_ "embed"
	"encoding/json"
	"time"

	"github.com/sharwapi/marketplace/internal/core"
)

// DefaultDelay is the simulated latency of a fetch.
const DefaultDelay = 500 * time.Millisecond

const name = "mock"

// EmbeddedPluginsJSON is the built-in plugin collection.
//
//go:embed plugins.json
var EmbeddedPluginsJSON []byte

func init() {
	core.Register(name, "", func(baseURL string, c *core.Client) core.Source {
		return New(DefaultDelay)
	})
}

type Source struct {
	delay time.Duration
	data  []byte
}

// New returns a source that waits delay before serving the built-in
// dataset. A negative delay is treated as zero.
func New(delay time.Duration) *Source {
	if delay < 0 {
		delay = 0
	}
	return &Source{delay: delay, data: EmbeddedPluginsJSON}
}

func (s *Source) Name() string {
	return name
}

func (s *Source) FetchCollection(ctx context.Context) (core.PluginCollection, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, &core.MockLoadError{Err: ctx.Err()}
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, &core.MockLoadError{Err: err}
	}

	var coll core.PluginCollection
	if err := json.Unmarshal(s.data, &coll); err != nil {
		return nil, &core.MockLoadError{Err: err}
	}
	return coll, nil
}
