// Package preferences holds the user's theme and locale preferences and
// persists them to durable storage.
package preferences

import (
	"sync"

	"github.com/sharwapi/marketplace/internal/logger"
	"github.com/sharwapi/marketplace/storage"
)

// Storage keys.
const (
	ThemeKey  = "user-theme"
	LocaleKey = "user-locale"
)

// Stored theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Localizer holds the active locale of the localization layer.
type Localizer interface {
	Locale() string
	SetLocale(locale string)
}

// SystemTheme reports the host's dark-mode preference.
type SystemTheme interface {
	PrefersDark() bool
}

// SystemThemeFunc adapts a function to SystemTheme.
type SystemThemeFunc func() bool

func (f SystemThemeFunc) PrefersDark() bool { return f() }

// ThemeMarker applies or removes the presentation's dark-mode marker.
type ThemeMarker interface {
	SetDark(dark bool)
}

// ThemeMarkerFunc adapts a function to ThemeMarker.
type ThemeMarkerFunc func(dark bool)

func (f ThemeMarkerFunc) SetDark(dark bool) { f(dark) }

// Field identifies which preference a Change concerns.
type Field int

const (
	FieldTheme Field = iota
	FieldLocale
)

// Change describes a preference mutation. It carries the full state after
// the mutation.
type Change struct {
	Field  Field
	IsDark bool
	Locale Locale
}

// Listener is notified after every preference mutation, in mutation order.
// A listener may mutate the store; the resulting change is delivered after
// the current one has reached every listener.
type Listener func(Change)

// Store owns the theme and locale preferences.
type Store struct {
	storage   storage.Storage
	localizer Localizer

	mu        sync.Mutex
	isDark    bool
	locale    Locale
	listeners []Listener

	// pending changes; the goroutine that set delivering drains it
	queue      []Change
	delivering bool
}

// New loads preferences from st, synchronizes the localizer's active locale
// and applies the initial theme through marker.
//
// A nil system reports a light preference; a nil marker is ignored.
func New(st storage.Storage, localizer Localizer, system SystemTheme, marker ThemeMarker) *Store {
	s := &Store{
		storage:   st,
		localizer: localizer,
		isDark:    initialTheme(st, system),
		locale:    initialLocale(st),
	}

	if localizer != nil && localizer.Locale() != string(s.locale) {
		localizer.SetLocale(string(s.locale))
	}

	theme := s.themeListener(marker)
	s.listeners = append(s.listeners, theme, s.localeListener())
	theme(s.snapshot(FieldTheme))

	return s
}

func initialTheme(st storage.Storage, system SystemTheme) bool {
	saved, ok, err := st.Get(ThemeKey)
	if err != nil {
		logger.Warn("Failed to read stored theme", "error", err)
	}
	if ok && saved != "" {
		return saved == ThemeDark
	}
	if system == nil {
		return false
	}
	return system.PrefersDark()
}

func initialLocale(st storage.Storage) Locale {
	saved, ok, err := st.Get(LocaleKey)
	if err != nil {
		logger.Warn("Failed to read stored locale", "error", err)
	}
	if !ok || saved == "" {
		return DefaultLocale
	}
	l, err := ParseLocale(saved)
	if err != nil {
		logger.Warn("Ignoring stored locale", "locale", saved, "error", err)
		return DefaultLocale
	}
	return l
}

// themeListener persists the theme and updates the dark-mode marker.
func (s *Store) themeListener(marker ThemeMarker) Listener {
	return func(c Change) {
		if c.Field != FieldTheme {
			return
		}
		if marker != nil {
			marker.SetDark(c.IsDark)
		}
		value := ThemeLight
		if c.IsDark {
			value = ThemeDark
		}
		if err := s.storage.Set(ThemeKey, value); err != nil {
			logger.Error("Failed to persist theme", "theme", value, "error", err)
		}
	}
}

// localeListener pushes the locale to the localizer and persists it.
func (s *Store) localeListener() Listener {
	return func(c Change) {
		if c.Field != FieldLocale {
			return
		}
		if s.localizer != nil {
			s.localizer.SetLocale(string(c.Locale))
		}
		if err := s.storage.Set(LocaleKey, string(c.Locale)); err != nil {
			logger.Error("Failed to persist locale", "locale", c.Locale, "error", err)
		}
		logger.Debug("Language set", "locale", c.Locale)
	}
}

// Subscribe registers l to be called after every mutation.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// IsDark reports whether dark mode is enabled.
func (s *Store) IsDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isDark
}

// Locale returns the current locale.
func (s *Store) Locale() Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// ToggleTheme flips the dark-mode preference.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	s.isDark = !s.isDark
	s.enqueue(FieldTheme)
	s.mu.Unlock()

	s.deliver()
}

// SetLocale switches the locale. Tags outside SupportedLocales are rejected
// with ErrUnsupportedLocale and leave the store unchanged.
func (s *Store) SetLocale(tag string) error {
	locale, err := ParseLocale(tag)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.locale = locale
	s.enqueue(FieldLocale)
	s.mu.Unlock()

	s.deliver()
	return nil
}

// enqueue records the current state as a change. s.mu must be held.
func (s *Store) enqueue(field Field) {
	s.queue = append(s.queue, Change{Field: field, IsDark: s.isDark, Locale: s.locale})
}

// deliver hands queued changes to the listeners unless another call is
// already doing so, in which case that call delivers them.
func (s *Store) deliver() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true

	for len(s.queue) > 0 {
		c := s.queue[0]
		s.queue = s.queue[1:]
		listeners := make([]Listener, len(s.listeners))
		copy(listeners, s.listeners)
		s.mu.Unlock()

		for _, l := range listeners {
			l(c)
		}

		s.mu.Lock()
	}

	s.delivering = false
	s.mu.Unlock()
}

func (s *Store) snapshot(field Field) Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Change{Field: field, IsDark: s.isDark, Locale: s.locale}
}
