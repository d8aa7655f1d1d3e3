package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sharwapi/marketplace"
	_ "github.com/sharwapi/marketplace/all"
	"github.com/sharwapi/marketplace/internal/cli/output"
)

// pluginView is the machine-readable form of a listed plugin.
type pluginView struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Author      string `json:"author" yaml:"author"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
	PURL        string `json:"purl,omitempty" yaml:"purl,omitempty"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		search    string
		format    string
		jsonOut   bool
		mock      bool
		sourceURL string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog plugins",
		Long: `List the plugins of the SharwAPI plugin collection.

Examples:
  # List every plugin
  marketplace list

  # Filter by name, author or description
  marketplace list --search auth

  # Use the built-in dataset
  marketplace list --mock --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if jsonOut {
				f = output.FormatJSON
			}

			s, err := openSession(cmd, opts, f)
			if err != nil {
				return err
			}
			defer s.Close()

			if cmd.Flags().Changed("mock") {
				s.cfg.Catalog.Mock = mock
			}
			if sourceURL != "" {
				s.cfg.Catalog.SourceURL = sourceURL
			}

			src, c, err := newSource(s)
			if err != nil {
				return err
			}
			if c != nil {
				defer c.Close()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			store := marketplace.NewCatalog(src)
			if f == output.FormatTable {
				fmt.Fprintln(cmd.ErrOrStderr(), s.t("global.loading", nil))
			}
			if err := store.FetchPlugins(ctx); err != nil {
				return fmt.Errorf("%s%s", s.t("global.error", nil), store.Err())
			}

			return printPlugins(s, store.Search(search), search)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name, author or description")
	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format (table|json|yaml)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "shorthand for --output json")
	cmd.Flags().BoolVar(&mock, "mock", false, "use the built-in dataset instead of the remote collection")
	cmd.Flags().StringVar(&sourceURL, "source-url", "", "collection document URL")
	return cmd
}

// newSource builds the configured catalog source. The returned client, if
// any, must be closed by the caller.
func newSource(s *session) (marketplace.Source, *marketplace.Client, error) {
	cat := s.cfg.Catalog
	if cat.Mock {
		return marketplace.NewMockSource(cat.MockDelay), nil, nil
	}

	c := marketplace.NewClient(
		marketplace.WithTimeout(cat.Timeout),
		marketplace.WithMaxRetries(cat.MaxRetries),
		marketplace.WithUserAgent(cat.UserAgent+"/"+Version),
		marketplace.WithBreakerThreshold(cat.BreakerThreshold),
	)
	src, err := marketplace.New("remote", cat.SourceURL, c)
	if err != nil {
		c.Close()
		return nil, nil, err
	}
	return src, c, nil
}

func printPlugins(s *session, list []marketplace.PluginEntity, search string) error {
	p := s.printer
	if len(list) == 0 && search != "" && p.Format() == output.FormatTable {
		p.Warning(s.t("global.noResults", map[string]string{"searchTerm": search}))
		return nil
	}

	locale := s.prefs.Locale().String()
	if p.Format() != output.FormatTable {
		views := make([]pluginView, 0, len(list))
		for _, e := range list {
			views = append(views, pluginView{
				ID:          e.ID,
				Name:        e.Name,
				Author:      e.Author,
				Description: e.LocalizedDescription(locale),
				URL:         e.URL,
				PURL:        e.PURL(),
			})
		}
		return p.Print(views)
	}

	table := output.NewTableData(
		s.t("cli.id", nil),
		s.t("cli.name", nil),
		s.t("cli.author", nil),
		s.t("cli.description", nil),
		s.t("cli.repository", nil),
	)
	for _, e := range list {
		table.AddRow(e.ID, e.Name, e.Author, e.LocalizedDescription(locale), e.URL)
	}
	return p.Print(table)
}
