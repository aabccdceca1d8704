package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/role"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notify"},
	Short:   "Read your notifications",
}

// notificationsListCmd lists the signed-in member's notifications
var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	Long: `List the signed-in member's notifications, newest first. Unread
entries are marked with a bullet.

Examples:
  sabha notifications list
  sabha notifications list --unread`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestNotifications); err != nil {
			return err
		}

		unreadOnly, _ := cmd.Flags().GetBool("unread")

		items, err := app.client.Notifications(cmd.Context())
		if err != nil {
			return err
		}

		shown := 0
		for _, n := range items {
			if unreadOnly && n.IsRead {
				continue
			}
			marker := "●"
			if n.IsRead {
				marker = " "
			}
			fmt.Printf("%s %-12s %-16s %s\n", marker, n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Title)
			shown++
		}
		if shown == 0 {
			fmt.Println("No notifications.")
		}
		return nil
	},
}

// notificationsReadCmd marks a notification as read
var notificationsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestNotifications); err != nil {
			return err
		}

		if err := app.client.MarkNotificationRead(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Marked as read.")
		return nil
	},
}

func init() {
	notificationsListCmd.Flags().Bool("unread", false, "Show unread notifications only")

	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	rootCmd.AddCommand(notificationsCmd)
}
