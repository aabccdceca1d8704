package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/role"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Browse the member directory",
}

// membersListCmd lists the member directory
var membersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List association members",
	Long: `List the member directory. Restricted to the administrative and
secretarial offices.

Examples:
  sabha members list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestMembers); err != nil {
			return err
		}

		members, err := app.client.Members(cmd.Context())
		if err != nil {
			return err
		}
		if len(members) == 0 {
			fmt.Println("No members found.")
			return nil
		}

		fmt.Printf("%-10s %-24s %-20s %-10s %s\n", "NO", "NAME", "ROLE", "STATUS", "JOINED")
		for _, member := range members {
			fmt.Printf("%-10s %-24s %-20s %-10s %s\n",
				member.MemberNo,
				member.Name,
				member.Role,
				member.Status,
				member.JoinedAt.Format("2006-01-02"),
			)
		}
		return nil
	},
}

func init() {
	membersCmd.AddCommand(membersListCmd)
	rootCmd.AddCommand(membersCmd)
}
