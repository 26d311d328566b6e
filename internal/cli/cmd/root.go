// Package cmd provides Cobra CLI commands for swipectl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/swipectl/internal/cli"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "swipectl",
		Short: "Swipe volume and brightness controls for a video-player screen",
		Long: `Swipectl - swipe-based volume and brightness controls.

Swipectl augments a third-party video-player screen with swipe gestures:
vertical swipes on the right half change the volume, on the left half the
brightness, with an optional press-to-swipe activation mode and a
brightness save/restore cycle driven by the observed player state.

The library core lives in internal/host; 'swipectl demo' runs an
interactive terminal simulation of a host screen around a live
coordinator, and 'swipectl config show' prints the effective feature
flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
	}
)

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
