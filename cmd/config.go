package cmd

import (
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the effective configuration as TOML.

Without --config the built-in defaults are printed, which makes a good
starting point for a custom configuration file:

  $ gofloor config > gofloor.toml
  $ gofloor --config gofloor.toml --watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return cfg.Encode(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
