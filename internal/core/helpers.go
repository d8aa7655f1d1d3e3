package core

import (
	"strings"
)

// Search returns the entities whose name, author or descriptions contain
// term, ignoring case. A blank term matches everything.
func Search(list []PluginEntity, term string) []PluginEntity {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return list
	}

	var out []PluginEntity
	for _, e := range list {
		if matches(e.PluginMeta, term) {
			out = append(out, e)
		}
	}
	return out
}

func matches(m PluginMeta, term string) bool {
	for _, field := range []string{m.Name, m.Author, m.Description, m.DescriptionZh} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// ErrorMessage converts a fetch failure into the message shown to users.
// It falls back to a generic message when err has none.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "failed to fetch plugins"
}
