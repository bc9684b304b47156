package main

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/tipcalc/internal/tui"
)

// tuiCmd runs the terminal form
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Fill in the form in the terminal",
	Long: `Open the tip calculator form in the terminal. Tip presets are read from
the configured database.

Keys:
  tab/shift+tab  move between fields
  ←/→            choose a preset tip
  ctrl+r         reset the form
  esc            quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		presets, err := store.ListPresets(cmd.Context())
		if err != nil {
			return err
		}
		return tui.Run(presets)
	},
}
