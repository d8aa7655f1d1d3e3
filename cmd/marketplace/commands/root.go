// Package commands implements the marketplace command-line interface.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootOptions holds the global flags.
type rootOptions struct {
	configFile string
	noColor    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "marketplace",
		Short: "Sharw's API Market - browse SharwAPI plugins",
		Long: `marketplace lists the plugins published in the SharwAPI plugin
collection and keeps your theme and language preferences.

Use "marketplace [command] --help" for more information about a command.

Environment Variables:
  All configuration options can be overridden using environment variables.
  Format: MARKETPLACE_<SECTION>_<KEY>, e.g. MARKETPLACE_CATALOG_MOCK=true.
  A .env file in the working directory is loaded first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/marketplace/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newThemeCmd(opts))
	cmd.AddCommand(newLocaleCmd(opts))
	cmd.AddCommand(newAboutCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}
