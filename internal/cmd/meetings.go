package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/meetings"
	"github.com/sabhahq/sabha/internal/role"
)

var meetingsCmd = &cobra.Command{
	Use:   "meetings",
	Short: "Browse meetings and resolutions",
}

// meetingsListCmd lists scheduled and past meetings
var meetingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meetings",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestMeetings); err != nil {
			return err
		}

		items, err := app.client.Meetings(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No meetings found.")
			return nil
		}

		fmt.Printf("%-12s %-12s %-30s %8s %8s %s\n", "ID", "DATE", "TITLE", "PRESENT", "ELIGIBLE", "QUORUM")
		for _, meeting := range items {
			quorum := "no"
			if meetings.QuorumMet(meeting.Attendees, meeting.Eligible, meetings.DefaultQuorumFraction) {
				quorum = "yes"
			}
			fmt.Printf("%-12s %-12s %-30s %8d %8d %s\n",
				meeting.ID,
				meeting.ScheduledAt.Format("2006-01-02"),
				meeting.Title,
				meeting.Attendees,
				meeting.Eligible,
				quorum,
			)
		}
		return nil
	},
}

// meetingsShowCmd shows one meeting with its resolutions and outcomes
var meetingsShowCmd = &cobra.Command{
	Use:   "show <meeting-id>",
	Short: "Show a meeting's resolutions and vote outcomes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestMeetings); err != nil {
			return err
		}

		meeting, err := findMeeting(cmd, app, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %s\n", meeting.Title, meeting.ScheduledAt.Format("2006-01-02 15:04"))
		if meeting.Location != "" {
			fmt.Printf("Location: %s\n", meeting.Location)
		}
		if meeting.Agenda != "" {
			fmt.Printf("Agenda:   %s\n", meeting.Agenda)
		}
		fmt.Printf("Present:  %d of %d eligible\n", meeting.Attendees, meeting.Eligible)

		if len(meeting.Resolutions) == 0 {
			fmt.Println("No resolutions on record.")
			return nil
		}

		fmt.Println()
		for _, resolution := range meeting.Resolutions {
			tally := meetings.CountVotes(resolution.Votes)
			outcome := meetings.Resolve(tally, meeting.Attendees, meeting.Eligible, meetings.DefaultQuorumFraction)
			fmt.Printf("%-12s %-40s for=%d against=%d abstain=%d  %s\n",
				resolution.ID,
				resolution.Title,
				tally.For,
				tally.Against,
				tally.Abstain,
				outcome,
			)
		}
		return nil
	},
}

// meetingsVoteCmd casts the signed-in member's ballot on a resolution
var meetingsVoteCmd = &cobra.Command{
	Use:   "vote <meeting-id> <resolution-id> <for|against|abstain>",
	Short: "Vote on a resolution",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		choice := strings.ToLower(args[2])
		switch choice {
		case "for", "against", "abstain":
		default:
			return fmt.Errorf("choice must be one of: for, against, abstain")
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		if _, err := app.requireAccess(cmd.Context(), role.DestMeetings); err != nil {
			return err
		}

		if err := app.client.CastVote(cmd.Context(), args[0], args[1], choice); err != nil {
			return err
		}

		fmt.Printf("Vote recorded: %s\n", choice)
		return nil
	},
}

func findMeeting(cmd *cobra.Command, app *app, id string) (*api.Meeting, error) {
	items, err := app.client.Meetings(cmd.Context())
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("meeting %q not found", id)
}

func init() {
	meetingsCmd.AddCommand(meetingsListCmd)
	meetingsCmd.AddCommand(meetingsShowCmd)
	meetingsCmd.AddCommand(meetingsVoteCmd)
	rootCmd.AddCommand(meetingsCmd)
}
