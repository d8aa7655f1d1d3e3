package core

import (
	"fmt"
	"testing"
)

func benchCollection(n int) PluginCollection {
	c := make(PluginCollection, n)
	for i := 0; i < n; i++ {
		c[fmt.Sprintf("plugin-%04d", i)] = PluginMeta{
			Name:        fmt.Sprintf("Plugin %d", i),
			Author:      "Bench Author",
			Description: "A plugin used to benchmark catalog projection and search.",
			URL:         fmt.Sprintf("https://github.com/bench/plugin-%d", i),
		}
	}
	return c
}

func BenchmarkEntities(b *testing.B) {
	c := benchCollection(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Entities()
	}
}

func BenchmarkSearch(b *testing.B) {
	list := benchCollection(1000).Entities()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Search(list, "plugin 99")
	}
}

func BenchmarkRepoPURL(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = RepoPURL("https://github.com/mock/search-filter")
	}
}
