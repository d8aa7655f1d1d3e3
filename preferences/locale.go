package preferences

import (
	"errors"
	"fmt"

	"github.com/sharwapi/marketplace/i18n"
)

// Locale is a supported UI locale.
type Locale string

const (
	ZhCN Locale = "zh-CN"
	EnUS Locale = "en-US"

	// DefaultLocale is used when no locale has been stored.
	DefaultLocale = ZhCN
)

// ErrUnsupportedLocale is returned for locale tags outside SupportedLocales.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// SupportedLocales lists every locale a Store accepts.
func SupportedLocales() []Locale {
	return []Locale{ZhCN, EnUS}
}

// ParseLocale maps a tag onto a supported Locale. Matching ignores case,
// so "en-us" yields EnUS.
func ParseLocale(tag string) (Locale, error) {
	normalized, err := i18n.ParseLocale(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedLocale, err)
	}
	for _, l := range SupportedLocales() {
		if string(l) == normalized {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, tag)
}

func (l Locale) String() string {
	return string(l)
}
