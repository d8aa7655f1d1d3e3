package commands

import (
	"github.com/spf13/cobra"

	"github.com/sharwapi/marketplace/internal/cli/output"
)

func newThemeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, output.FormatTable)
			if err != nil {
				return err
			}
			defer s.Close()

			return output.SimpleTable(s.printer.Writer(), [][2]string{
				{s.t("cli.theme", nil), themeName(s, s.prefs.IsDark())},
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, output.FormatTable)
			if err != nil {
				return err
			}
			defer s.Close()

			s.prefs.ToggleTheme()
			s.printer.Success(s.t("cli.themeSet", map[string]string{
				"theme": themeName(s, s.prefs.IsDark()),
			}))
			return nil
		},
	})

	return cmd
}

func themeName(s *session, dark bool) string {
	if dark {
		return s.t("cli.dark", nil)
	}
	return s.t("cli.light", nil)
}
