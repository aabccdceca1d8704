package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sabha",
	Short: "Admin console for the community association",
	Long: `sabha is the terminal console for running a community association.
It covers the day-to-day office work: members, contributions, funds,
expenses, meetings, complaints, and announcements, with access scoped
to the office held by the signed-in member.

Sign in once with 'sabha login'; the session is kept in ~/.sabha and
re-verified with the backend on every start.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a cancellable context so an
// interrupt propagates into in-flight requests
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
