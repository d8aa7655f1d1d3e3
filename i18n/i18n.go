// Package i18n resolves display strings for the supported locales and holds
// the active locale.
package i18n

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the active locale of a new Bundle.
	DefaultLocale = "zh-CN"

	// FallbackLocale is consulted when a message is missing from the
	// active locale.
	FallbackLocale = "en-US"
)

// ErrInvalidTag is returned by ParseLocale for malformed tags.
var ErrInvalidTag = errors.New("invalid locale tag")

// ParseLocale normalizes a BCP 47 tag, e.g. "en-us" becomes "en-US".
func ParseLocale(tag string) (string, error) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidTag, tag, err)
	}
	return t.String(), nil
}

// Bundle holds message tables and the active locale.
type Bundle struct {
	mu       sync.RWMutex
	locale   string
	fallback string
	messages map[string]map[string]any
}

// New returns a Bundle with the built-in messages, active locale
// DefaultLocale and fallback FallbackLocale.
func New() *Bundle {
	return &Bundle{
		locale:   DefaultLocale,
		fallback: FallbackLocale,
		messages: messages,
	}
}

// Locale returns the active locale tag.
func (b *Bundle) Locale() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.locale
}

// SetLocale sets the active locale tag. Tags without a message table are
// accepted; lookups then use the fallback locale.
func (b *Bundle) SetLocale(locale string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.locale = locale
}

// Locales returns the tags that have a message table.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.messages))
	for tag := range b.messages {
		out = append(out, tag)
	}
	return out
}

// T resolves a dotted message path such as "global.noResults" in the active
// locale, then the fallback locale, and finally returns the path itself.
// "{name}" placeholders are replaced from args.
func (b *Bundle) T(path string, args map[string]string) string {
	b.mu.RLock()
	locale, fallback := b.locale, b.fallback
	b.mu.RUnlock()

	msg, ok := b.lookup(locale, path)
	if !ok {
		msg, ok = b.lookup(fallback, path)
	}
	if !ok {
		return path
	}
	return interpolate(msg, args)
}

// TL resolves path in a specific locale, without changing the active one.
func (b *Bundle) TL(locale, path string, args map[string]string) string {
	msg, ok := b.lookup(locale, path)
	if !ok {
		msg, ok = b.lookup(b.fallback, path)
	}
	if !ok {
		return path
	}
	return interpolate(msg, args)
}

func (b *Bundle) lookup(locale, path string) (string, bool) {
	table, ok := b.messages[locale]
	if !ok {
		return "", false
	}

	var node any = table
	for _, part := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[part]
		if !ok {
			return "", false
		}
	}

	s, ok := node.(string)
	return s, ok
}

func interpolate(msg string, args map[string]string) string {
	if len(args) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
