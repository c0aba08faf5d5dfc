package cmd

import (
	"os"

	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/internal/gui"
	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the editor in a Fyne window",
	Long:  `Open the editor with the Fyne toolkit instead of the raylib window. Walls are drawn as wireframes in both views.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return gui.Run(gui.Options{
			Config:     cfg,
			ConfigPath: configPath,
			Watch:      watch,
			Logger:     newLogger(os.Stderr),
		})
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
