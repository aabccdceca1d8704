package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/notify"
	"github.com/sabhahq/sabha/internal/tui"
)

// consoleCmd launches the interactive console
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the interactive console",
	Long: `Open the full-screen console. A stored session is restored
optimistically and re-verified in the background; without one the
console starts at the sign-in view.

Examples:
  sabha console`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		app.store.Restore()

		poller := notify.NewPoller(app.client, app.cfg.PollInterval, app.logger)
		poller.Start(cmd.Context())
		defer poller.Stop()

		model := tui.NewModel(app.store, app.client, poller, app.logger)
		program := tea.NewProgram(model, tea.WithAltScreen())

		// A rejected token anywhere — a poll tick included — clears the
		// session and drops the console back to the sign-in view.
		app.client.SetUnauthorizedHook(func() {
			if err := app.store.Clear(); err != nil {
				app.logger.WithError(err).Warn("failed to clear rejected session")
			}
			program.Send(tui.UnauthorizedMsg{})
		})

		if _, err := program.Run(); err != nil {
			return fmt.Errorf("console failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
