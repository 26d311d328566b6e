package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/swipectl/internal/cli/model"
	"github.com/bnema/swipectl/internal/cli/styles"
	"github.com/bnema/swipectl/internal/config"
	"github.com/bnema/swipectl/internal/logging"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an interactive host-screen simulation",
	Long: `Runs a terminal simulation of a host video-player screen with a live
coordinator: keys emit synthetic lifecycle, touch and key signals, and
the view shows volume, brightness, player state and overlay attachment.

The coordinator starts uninitialized; deliver the create signal with 'c'
or let the first gesture self-heal it.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		// The coordinator binds its flag snapshot once; watching only
		// surfaces that a restart is needed for changes to apply.
		if err := app.Config.Watch(); err != nil {
			return err
		}
		app.Config.OnConfigChange(func(_ *config.Config) {
			logging.FromContext(app.Ctx).Info().Msg("config changed on disk, restart the demo to apply")
		})

		m := model.NewDemoModel(app.Ctx, app.Config.Snapshot(), styles.DefaultTheme())
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
