package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharwapi/marketplace/config"
	"github.com/sharwapi/marketplace/internal/cli/output"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long: `Manage marketplace configuration files.

Subcommands:
  init  Write a configuration file with default values
  show  Display the effective configuration`,
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configFile
			if path == "" {
				path = config.GetDefaultConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
			}
			if err := config.SaveConfig(config.GetDefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Long: `Display the configuration after applying the file, environment
variables and defaults.

Examples:
  # Show as YAML
  marketplace config show

  # Show as JSON
  marketplace config show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == output.FormatJSON {
				return output.PrintJSON(cmd.OutOrStdout(), cfg)
			}
			return output.PrintYAML(cmd.OutOrStdout(), cfg)
		},
	}
	showCmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format (yaml|json)")

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
