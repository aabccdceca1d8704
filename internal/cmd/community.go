package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/role"
)

var complaintsCmd = &cobra.Command{
	Use:   "complaints",
	Short: "Raise and track complaints",
}

// complaintsListCmd lists complaints
var complaintsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List complaints",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestComplaints); err != nil {
			return err
		}

		complaints, err := app.client.Complaints(cmd.Context())
		if err != nil {
			return err
		}
		if len(complaints) == 0 {
			fmt.Println("No complaints on record.")
			return nil
		}

		fmt.Printf("%-12s %-12s %-34s %-12s %s\n", "ID", "DATE", "SUBJECT", "RAISED BY", "STATUS")
		for _, complaint := range complaints {
			fmt.Printf("%-12s %-12s %-34s %-12s %s\n",
				complaint.ID,
				complaint.CreatedAt.Format("2006-01-02"),
				complaint.Subject,
				complaint.RaisedBy,
				complaint.Status,
			)
		}
		return nil
	},
}

// complaintsFileCmd files a new complaint
var complaintsFileCmd = &cobra.Command{
	Use:   "file",
	Short: "File a new complaint",
	Long: `File a complaint with the office. Prompts for the subject and
details when not given as flags.

Examples:
  sabha complaints file --subject "Street light broken" --details "Lamp at gate 3 has been out for a week"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestComplaints); err != nil {
			return err
		}

		subject, _ := cmd.Flags().GetString("subject")
		details, _ := cmd.Flags().GetString("details")
		if subject == "" {
			if err := promptInput("Subject", &subject, false); err != nil {
				return err
			}
		}
		if details == "" {
			if err := promptInput("Details", &details, false); err != nil {
				return err
			}
		}
		if subject == "" {
			return fmt.Errorf("a subject is required")
		}

		complaint, err := app.client.FileComplaint(cmd.Context(), subject, details)
		if err != nil {
			return err
		}

		fmt.Printf("Complaint filed: %s (%s)\n", complaint.ID, complaint.Status)
		return nil
	},
}

var announcementsCmd = &cobra.Command{
	Use:   "announcements",
	Short: "Read and post announcements",
}

// announcementsListCmd lists announcements
var announcementsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestAnnouncements); err != nil {
			return err
		}

		announcements, err := app.client.Announcements(cmd.Context())
		if err != nil {
			return err
		}
		if len(announcements) == 0 {
			fmt.Println("No announcements.")
			return nil
		}

		for _, announcement := range announcements {
			fmt.Printf("%s  %s\n", announcement.CreatedAt.Format("2006-01-02"), announcement.Title)
			if announcement.Body != "" {
				fmt.Printf("    %s\n", announcement.Body)
			}
		}
		return nil
	},
}

// announcementsPostCmd posts a new announcement
var announcementsPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Post an announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestAnnouncements); err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		body, _ := cmd.Flags().GetString("body")
		if title == "" {
			if err := promptInput("Title", &title, false); err != nil {
				return err
			}
		}
		if body == "" {
			if err := promptInput("Body", &body, false); err != nil {
				return err
			}
		}
		if title == "" {
			return fmt.Errorf("a title is required")
		}

		announcement, err := app.client.PostAnnouncement(cmd.Context(), title, body)
		if err != nil {
			return err
		}

		fmt.Printf("Announcement posted: %s\n", announcement.ID)
		return nil
	},
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Browse member suggestions",
}

// suggestionsListCmd lists member suggestions
var suggestionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suggestions",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestSuggestions); err != nil {
			return err
		}

		suggestions, err := app.client.Suggestions(cmd.Context())
		if err != nil {
			return err
		}
		if len(suggestions) == 0 {
			fmt.Println("No suggestions.")
			return nil
		}

		fmt.Printf("%-12s %-38s %s\n", "DATE", "SUBJECT", "RAISED BY")
		for _, suggestion := range suggestions {
			fmt.Printf("%-12s %-38s %s\n",
				suggestion.CreatedAt.Format("2006-01-02"),
				suggestion.Subject,
				suggestion.RaisedBy,
			)
		}
		return nil
	},
}

// auditCmd lists the administrative audit trail
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the administrative audit trail",
	Long: `List administrative actions recorded by the backend. Restricted
to the super admin.

Examples:
  sabha audit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestAuditLogs); err != nil {
			return err
		}

		logs, err := app.client.AuditLogs(cmd.Context())
		if err != nil {
			return err
		}
		if len(logs) == 0 {
			fmt.Println("Audit trail is empty.")
			return nil
		}

		fmt.Printf("%-18s %-14s %-24s %s\n", "TIME", "ACTOR", "ACTION", "TARGET")
		for _, entry := range logs {
			fmt.Printf("%-18s %-14s %-24s %s\n",
				entry.CreatedAt.Format("2006-01-02 15:04"),
				entry.Actor,
				entry.Action,
				entry.Target,
			)
		}
		return nil
	},
}

func init() {
	complaintsFileCmd.Flags().String("subject", "", "Complaint subject")
	complaintsFileCmd.Flags().String("details", "", "Complaint details")
	announcementsPostCmd.Flags().String("title", "", "Announcement title")
	announcementsPostCmd.Flags().String("body", "", "Announcement body")

	complaintsCmd.AddCommand(complaintsListCmd)
	complaintsCmd.AddCommand(complaintsFileCmd)
	announcementsCmd.AddCommand(announcementsListCmd)
	announcementsCmd.AddCommand(announcementsPostCmd)
	suggestionsCmd.AddCommand(suggestionsListCmd)

	rootCmd.AddCommand(complaintsCmd)
	rootCmd.AddCommand(announcementsCmd)
	rootCmd.AddCommand(suggestionsCmd)
	rootCmd.AddCommand(auditCmd)
}
