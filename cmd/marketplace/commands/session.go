package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sharwapi/marketplace/config"
	"github.com/sharwapi/marketplace/i18n"
	"github.com/sharwapi/marketplace/internal/cli/output"
	"github.com/sharwapi/marketplace/internal/logger"
	"github.com/sharwapi/marketplace/preferences"
	"github.com/sharwapi/marketplace/storage"
)

// session is the state shared by commands that touch preferences.
type session struct {
	cfg     *config.Config
	bundle  *i18n.Bundle
	storage storage.Storage
	prefs   *preferences.Store
	printer *output.Printer
}

func openSession(cmd *cobra.Command, opts *rootOptions, format output.Format) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	st, err := openStorage(cfg.Preferences.Path)
	if err != nil {
		return nil, err
	}

	color := !opts.noColor && os.Getenv("NO_COLOR") == ""
	printer := output.NewPrinter(cmd.OutOrStdout(), format, color)
	bundle := i18n.New()

	return &session{
		cfg:     cfg,
		bundle:  bundle,
		storage: st,
		prefs:   preferences.New(st, bundle, systemTheme(cfg), printer),
		printer: printer,
	}, nil
}

func (s *session) Close() {
	if err := s.storage.Close(); err != nil {
		logger.Warn("Failed to close preference storage", "error", err)
	}
}

func (s *session) t(path string, args map[string]string) string {
	return s.bundle.T(path, args)
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

// openStorage opens the preference database at path, or an in-memory one
// when path is empty.
func openStorage(path string) (storage.Storage, error) {
	if path == "" {
		return storage.NewMemory(), nil
	}
	st, err := storage.OpenBadger(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	return st, nil
}

// systemTheme honors preferences.system_dark and otherwise inspects the
// terminal's COLORFGBG ("fg;bg") hint.
func systemTheme(cfg *config.Config) preferences.SystemTheme {
	if v := cfg.Preferences.SystemDark; v != nil {
		dark := *v
		return preferences.SystemThemeFunc(func() bool { return dark })
	}
	return preferences.SystemThemeFunc(func() bool {
		return darkBackground(os.Getenv("COLORFGBG"))
	})
}

// darkBackground reports whether the background index of a COLORFGBG value
// is one of the dark ANSI colors (0-6 and 8).
func darkBackground(colorfgbg string) bool {
	if colorfgbg == "" {
		return false
	}
	parts := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false
	}
	return (bg >= 0 && bg <= 6) || bg == 8
}
