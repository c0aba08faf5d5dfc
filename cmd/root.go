package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/philipparndt/gofloor/internal/app"
	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	watch      bool
	verbose    bool
	demo       bool
)

var rootCmd = &cobra.Command{
	Use:          "gofloor",
	Short:        "Interactive floorplan wall editor",
	Long:         `gofloor draws, selects, drags and deletes walls in a 2D plan view and inspects them in a 3D perspective view.`,
	Version:      version.GetFullVersion(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(os.Stderr)
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Config:     cfg,
			ConfigPath: configPath,
			Watch:      watch,
			Demo:       demo,
			Logger:     logger,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&watch, "watch", "w", false, "reload the configuration file when it changes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&demo, "demo", false, "start with a sample room")
}

// newLogger creates a timestamped logger writing to w.
// Debug messages are shown only with --verbose.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "gofloor",
	})
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
