// Package commands implements the tailcss command line.
package commands

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

// NewRootCmd returns the tailcss command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tailcss",
		Short:         "tailcss generates atomic CSS from the utility classes your sources use",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default: search upwards for tailcss.{toml,yaml,yml,json})")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error or none (overrides the configuration)")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
