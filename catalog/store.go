// Package catalog holds the plugin catalog fetched from a Source together
// with its loading and error state.
package catalog

import (
	"context"
	"sync"

	"github.com/sharwapi/marketplace/internal/core"
	"github.com/sharwapi/marketplace/internal/logger"
)

// Store caches the plugin collection of a single Source.
//
// Overlapping FetchPlugins calls are resolved by call order: a result is
// applied only if no later call's result has been applied already.
type Store struct {
	source core.Source

	mu      sync.RWMutex
	plugins core.PluginCollection
	list    []core.PluginEntity // nil until first read after a change
	errMsg  string
	pending int
	issued  uint64 // sequence number of the most recent call
	applied uint64 // sequence number of the most recent applied result
}

// New returns an empty Store fetching from src.
func New(src core.Source) *Store {
	return &Store{
		source:  src,
		plugins: core.PluginCollection{},
	}
}

// Source returns the store's source.
func (s *Store) Source() core.Source {
	return s.source
}

// FetchPlugins loads the collection from the source and replaces the cached
// one. On failure the previous collection is kept and Err reports the
// failure. The returned error is the one recorded, for callers that want it.
func (s *Store) FetchPlugins(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.pending++
	s.errMsg = ""
	s.mu.Unlock()

	log := logger.With("source", s.source.Name(), "seq", seq)
	coll, err := s.source.FetchCollection(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending--

	if seq < s.applied {
		log.Debug("Discarding stale catalog result", "applied", s.applied)
		return err
	}
	s.applied = seq

	if err != nil {
		s.errMsg = core.ErrorMessage(err)
		log.Error("Failed to fetch plugins", "error", err)
		return err
	}

	s.plugins = coll
	s.list = nil
	s.errMsg = ""
	log.Info("Fetched plugins", "count", len(coll))
	return nil
}

// Plugins returns a copy of the cached collection.
func (s *Store) Plugins() core.PluginCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plugins.Clone()
}

// PluginList returns the cached collection as entities ordered by id. The
// list is computed on first read and reused until the collection changes.
func (s *Store) PluginList() []core.PluginEntity {
	s.mu.RLock()
	list := s.list
	s.mu.RUnlock()
	if list != nil {
		return clone(list)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.list == nil {
		s.list = s.plugins.Entities()
	}
	return clone(s.list)
}

// Search returns the entries of PluginList matching term.
func (s *Store) Search(term string) []core.PluginEntity {
	return core.Search(s.PluginList(), term)
}

// IsLoading reports whether a fetch is in progress.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

// Err returns the message of the last failed fetch, or "" if the last
// applied fetch succeeded or none has run.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func clone(list []core.PluginEntity) []core.PluginEntity {
	out := make([]core.PluginEntity, len(list))
	copy(out, list)
	return out
}
