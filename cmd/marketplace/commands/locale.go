package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharwapi/marketplace/internal/cli/output"
	"github.com/sharwapi/marketplace/preferences"
)

func newLocaleCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Show the current language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, output.FormatTable)
			if err != nil {
				return err
			}
			defer s.Close()

			return output.SimpleTable(s.printer.Writer(), [][2]string{
				{s.t("cli.locale", nil), s.prefs.Locale().String()},
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <tag>",
		Short: "Set the language (zh-CN or en-US)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, output.FormatTable)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.prefs.SetLocale(args[0]); err != nil {
				return err
			}
			s.printer.Success(s.t("cli.localeSet", map[string]string{
				"locale": s.prefs.Locale().String(),
			}))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range preferences.SupportedLocales() {
				fmt.Fprintln(cmd.OutOrStdout(), l.String())
			}
			return nil
		},
	})

	return cmd
}
