// Package core provides the catalog's shared types and the source registry.
package core

import (
	"sort"
	"strings"
)

// PluginMeta describes one plugin in the catalog.
type PluginMeta struct {
	Name          string `json:"name"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	DescriptionZh string `json:"description_zh,omitempty"`
	URL           string `json:"url"`
}

// LocalizedDescription returns the Chinese description for Chinese locale
// tags when one is present, and the English description otherwise.
func (m PluginMeta) LocalizedDescription(locale string) string {
	if m.DescriptionZh != "" && strings.HasPrefix(strings.ToLower(locale), "zh") {
		return m.DescriptionZh
	}
	return m.Description
}

// PluginCollection maps plugin identifiers to their metadata.
type PluginCollection map[string]PluginMeta

// Clone returns a copy of the collection. A nil collection clones to an
// empty one.
func (c PluginCollection) Clone() PluginCollection {
	out := make(PluginCollection, len(c))
	for id, meta := range c {
		out[id] = meta
	}
	return out
}

// Equal reports whether both collections hold the same entries.
func (c PluginCollection) Equal(other PluginCollection) bool {
	if len(c) != len(other) {
		return false
	}
	for id, meta := range c {
		if o, ok := other[id]; !ok || o != meta {
			return false
		}
	}
	return true
}

// Entities projects the collection into a list of entities ordered by id.
func (c PluginCollection) Entities() []PluginEntity {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	list := make([]PluginEntity, 0, len(ids))
	for _, id := range ids {
		list = append(list, PluginEntity{ID: id, PluginMeta: c[id]})
	}
	return list
}

// PluginEntity is a PluginMeta decorated with its collection key.
type PluginEntity struct {
	ID string `json:"id"`
	PluginMeta
}
