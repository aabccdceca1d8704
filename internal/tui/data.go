package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sabhahq/sabha/internal/role"
)

const unreadRefreshEvery = 5 * time.Second

// enterCmd produces the data-loading command for a destination. Views
// stay thin: fetch, shape rows, render. Errors surface inline on the
// view that asked for the data.
func (m Model) enterCmd(dest role.Destination) tea.Cmd {
	switch dest {
	case role.DestAdminDashboard, role.DestTreasurerDashboard:
		return m.summaryCmd()
	case role.DestMembers:
		return m.membersCmd()
	case role.DestFunds:
		return m.fundsCmd()
	case role.DestExpenses:
		return m.expensesCmd()
	case role.DestContributions:
		return m.contributionsCmd()
	case role.DestMeetings:
		return m.meetingsCmd()
	case role.DestComplaints:
		return m.complaintsCmd()
	case role.DestAnnouncements:
		return m.announcementsCmd()
	case role.DestSuggestions:
		return m.suggestionsCmd()
	case role.DestAuditLogs:
		return m.auditLogsCmd()
	case role.DestReports:
		return m.summaryCmd()
	case role.DestNotifications:
		return m.notificationsCmd()
	}
	return nil
}

func (m Model) summaryCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		summary, err := client.Reports(context.Background())
		return summaryMsg{summary: summary, err: err}
	}
}

func (m Model) membersCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		members, err := client.Members(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestMembers, err: err}
		}
		columns := []table.Column{
			{Title: "No", Width: 8},
			{Title: "Name", Width: 24},
			{Title: "Role", Width: 18},
			{Title: "Status", Width: 10},
			{Title: "Joined", Width: 12},
		}
		rows := make([]table.Row, len(members))
		for i, member := range members {
			rows[i] = table.Row{
				member.MemberNo,
				member.Name,
				member.Role,
				member.Status,
				member.JoinedAt.Format("2006-01-02"),
			}
		}
		return tableDataMsg{dest: role.DestMembers, columns: columns, rows: rows}
	}
}

func (m Model) fundsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		funds, err := client.Funds(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestFunds, err: err}
		}
		columns := []table.Column{
			{Title: "Fund", Width: 26},
			{Title: "Balance", Width: 14},
			{Title: "Target", Width: 14},
		}
		rows := make([]table.Row, len(funds))
		for i, fund := range funds {
			rows[i] = table.Row{
				fund.Name,
				formatAmount(fund.Balance),
				formatAmount(fund.Target),
			}
		}
		return tableDataMsg{dest: role.DestFunds, columns: columns, rows: rows}
	}
}

func (m Model) expensesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		expenses, err := client.Expenses(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestExpenses, err: err}
		}
		columns := []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Description", Width: 30},
			{Title: "Category", Width: 14},
			{Title: "Amount", Width: 12},
		}
		rows := make([]table.Row, len(expenses))
		for i, expense := range expenses {
			rows[i] = table.Row{
				expense.SpentAt.Format("2006-01-02"),
				expense.Description,
				expense.Category,
				formatAmount(expense.Amount),
			}
		}
		return tableDataMsg{dest: role.DestExpenses, columns: columns, rows: rows}
	}
}

func (m Model) contributionsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		contributions, err := client.Contributions(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestContributions, err: err}
		}
		columns := []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Member", Width: 10},
			{Title: "Mode", Width: 10},
			{Title: "Amount", Width: 12},
		}
		rows := make([]table.Row, len(contributions))
		for i, contribution := range contributions {
			rows[i] = table.Row{
				contribution.PaidAt.Format("2006-01-02"),
				contribution.MemberNo,
				contribution.Mode,
				formatAmount(contribution.Amount),
			}
		}
		return tableDataMsg{dest: role.DestContributions, columns: columns, rows: rows}
	}
}

func (m Model) meetingsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		meetings, err := client.Meetings(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestMeetings, err: err}
		}
		columns := []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Title", Width: 28},
			{Title: "Present", Width: 8},
			{Title: "Eligible", Width: 8},
			{Title: "Resolutions", Width: 12},
		}
		rows := make([]table.Row, len(meetings))
		for i, meeting := range meetings {
			rows[i] = table.Row{
				meeting.ScheduledAt.Format("2006-01-02"),
				meeting.Title,
				fmt.Sprintf("%d", meeting.Attendees),
				fmt.Sprintf("%d", meeting.Eligible),
				fmt.Sprintf("%d", len(meeting.Resolutions)),
			}
		}
		return tableDataMsg{dest: role.DestMeetings, columns: columns, rows: rows}
	}
}

func (m Model) complaintsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		complaints, err := client.Complaints(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestComplaints, err: err}
		}
		columns := []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Subject", Width: 30},
			{Title: "Raised by", Width: 12},
			{Title: "Status", Width: 12},
		}
		rows := make([]table.Row, len(complaints))
		for i, complaint := range complaints {
			rows[i] = table.Row{
				complaint.CreatedAt.Format("2006-01-02"),
				complaint.Subject,
				complaint.RaisedBy,
				complaint.Status,
			}
		}
		return tableDataMsg{dest: role.DestComplaints, columns: columns, rows: rows}
	}
}

func (m Model) announcementsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		announcements, err := client.Announcements(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestAnnouncements, err: err}
		}
		columns := []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Title", Width: 30},
			{Title: "Posted by", Width: 16},
		}
		rows := make([]table.Row, len(announcements))
		for i, announcement := range announcements {
			rows[i] = table.Row{
				announcement.CreatedAt.Format("2006-01-02"),
				announcement.Title,
				announcement.PostedBy,
			}
		}
		return tableDataMsg{dest: role.DestAnnouncements, columns: columns, rows: rows}
	}
}

func (m Model) suggestionsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		suggestions, err := client.Suggestions(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestSuggestions, err: err}
		}
		columns := []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Subject", Width: 34},
			{Title: "Raised by", Width: 12},
		}
		rows := make([]table.Row, len(suggestions))
		for i, suggestion := range suggestions {
			rows[i] = table.Row{
				suggestion.CreatedAt.Format("2006-01-02"),
				suggestion.Subject,
				suggestion.RaisedBy,
			}
		}
		return tableDataMsg{dest: role.DestSuggestions, columns: columns, rows: rows}
	}
}

func (m Model) auditLogsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		logs, err := client.AuditLogs(context.Background())
		if err != nil {
			return tableDataMsg{dest: role.DestAuditLogs, err: err}
		}
		columns := []table.Column{
			{Title: "Time", Width: 18},
			{Title: "Actor", Width: 14},
			{Title: "Action", Width: 20},
			{Title: "Target", Width: 18},
		}
		rows := make([]table.Row, len(logs))
		for i, entry := range logs {
			rows[i] = table.Row{
				entry.CreatedAt.Format("2006-01-02 15:04"),
				entry.Actor,
				entry.Action,
				entry.Target,
			}
		}
		return tableDataMsg{dest: role.DestAuditLogs, columns: columns, rows: rows}
	}
}

func (m Model) notificationsCmd() tea.Cmd {
	poller := m.poller
	return func() tea.Msg {
		poller.RefreshNow(context.Background())

		columns := []table.Column{
			{Title: "ID", Width: 10},
			{Title: "", Width: 2},
			{Title: "Title", Width: 28},
			{Title: "Received", Width: 16},
		}
		items := poller.Snapshot()
		rows := make([]table.Row, len(items))
		for i, n := range items {
			marker := "●"
			if n.IsRead {
				marker = " "
			}
			rows[i] = table.Row{
				n.ID,
				marker,
				n.Title,
				n.CreatedAt.Format("2006-01-02 15:04"),
			}
		}
		return tableDataMsg{dest: role.DestNotifications, columns: columns, rows: rows}
	}
}

// markSelectedReadCmd marks the highlighted notification as read
func (m Model) markSelectedReadCmd() tea.Cmd {
	row := m.table.SelectedRow()
	if row == nil {
		return nil
	}
	id := row[0]
	poller := m.poller
	return func() tea.Msg {
		return markReadMsg{err: poller.MarkRead(context.Background(), id)}
	}
}

// unreadTickCmd schedules the next unread-badge refresh
func (m Model) unreadTickCmd() tea.Cmd {
	poller := m.poller
	return tea.Tick(unreadRefreshEvery, func(time.Time) tea.Msg {
		return unreadMsg{count: poller.Unread()}
	})
}

func newTable(columns []table.Column, rows []table.Row, height int) table.Model {
	tableHeight := len(rows) + 1
	if max := height - 10; max > 0 && tableHeight > max {
		tableHeight = max
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)

	return t
}

func formatAmount(amount float64) string {
	if amount == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", amount)
}
