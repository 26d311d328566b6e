package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect swipectl configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := app.Config.Get()

		file := app.Config.ConfigFileUsed()
		if file == "" {
			file = "(built-in defaults)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config file: %s\n\n", file)
		fmt.Fprintf(out, "[controls]\n")
		fmt.Fprintf(out, "enable_volume_gestures      = %v\n", cfg.Controls.EnableVolumeGestures)
		fmt.Fprintf(out, "enable_brightness_gestures  = %v\n", cfg.Controls.EnableBrightnessGestures)
		fmt.Fprintf(out, "press_to_swipe              = %v\n", cfg.Controls.PressToSwipe)
		fmt.Fprintf(out, "save_and_restore_brightness = %v\n", cfg.Controls.SaveAndRestoreBrightness)
		fmt.Fprintf(out, "enable_swipe_to_change_video = %v\n", cfg.Controls.EnableSwipeToChangeVideo)
		fmt.Fprintf(out, "\n[logging]\n")
		fmt.Fprintf(out, "level  = %s\n", cfg.Logging.Level)
		fmt.Fprintf(out, "format = %s\n", cfg.Logging.Format)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
