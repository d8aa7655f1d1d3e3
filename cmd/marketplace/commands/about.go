package commands

import (
	"github.com/spf13/cobra"

	"github.com/sharwapi/marketplace/internal/cli/output"
)

func newAboutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Describe the marketplace and its data source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts, output.FormatTable)
			if err != nil {
				return err
			}
			defer s.Close()

			p := s.printer
			p.Println(s.t("about.title", nil))
			p.Println()
			p.Println(s.t("about.p1", nil))
			p.Printf("%s %s\n", s.t("about.p2", nil), s.cfg.Catalog.SourceURL)
			return nil
		},
	}
}
