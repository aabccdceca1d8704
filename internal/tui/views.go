package tui

import (
	"fmt"
	"strings"

	"github.com/sabhahq/sabha/internal/role"
)

// titles maps destinations to view headings
var titles = map[role.Destination]string{
	role.DestLogin:              "Sign in",
	role.DestAdminDashboard:     "Administration",
	role.DestTreasurerDashboard: "Treasury",
	role.DestOfficeDashboard:    "Office",
	role.DestMembers:            "Members",
	role.DestFunds:              "Funds",
	role.DestExpenses:           "Expenses",
	role.DestContributions:      "Contributions",
	role.DestMeetings:           "Meetings",
	role.DestComplaints:         "Complaints",
	role.DestAnnouncements:      "Announcements",
	role.DestSuggestions:        "Suggestions",
	role.DestAuditLogs:          "Audit log",
	role.DestReports:            "Reports",
	role.DestNotifications:      "Notifications",
}

// View renders the console (required by Bubble Tea)
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	if snap.Loading {
		return m.renderWait()
	}

	switch dest := m.nav.Current(); dest {
	case role.DestLogin:
		return m.renderLogin()
	case role.DestAdminDashboard, role.DestTreasurerDashboard, role.DestOfficeDashboard:
		return m.renderDashboard(dest)
	default:
		return m.renderList(dest)
	}
}

func (m Model) renderWait() string {
	return m.styles.Border.Render(
		fmt.Sprintf("%s Restoring session...", m.spin.View()),
	)
}

func (m Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("sabha console"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Sign in with your member credentials"))
	b.WriteString("\n\n")
	b.WriteString(m.login.memberNo.View())
	b.WriteString("\n")
	b.WriteString(m.login.password.View())
	b.WriteString("\n")

	if m.login.submitting {
		b.WriteString("\n" + m.spin.View() + " Signing in...")
	}
	if m.login.errMsg != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.login.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp("tab", "switch field", "enter", "sign in", "ctrl+c", "quit"))

	return m.styles.Border.Render(b.String())
}

func (m Model) renderDashboard(dest role.Destination) string {
	snap := m.session.Snapshot()

	var b strings.Builder
	b.WriteString(m.renderHeader(dest))

	if snap.User != nil {
		b.WriteString(fmt.Sprintf("Welcome, %s (%s)\n\n", snap.User.Name, snap.User.Role))
	}

	if m.loadingData {
		b.WriteString(m.spin.View() + " Loading...\n")
	}
	if m.summary != nil {
		b.WriteString(m.renderSummary())
	}
	if m.lastError != "" {
		b.WriteString(m.styles.Error.Render(m.lastError) + "\n")
	}

	b.WriteString("\n" + m.renderMenu(snap.Role()))
	b.WriteString(m.renderHelp("esc", "back", "q", "quit"))

	return m.styles.Border.Render(b.String())
}

func (m Model) renderSummary() string {
	s := m.summary
	lines := []string{
		fmt.Sprintf("Members:        %d (%d active)", s.TotalMembers, s.ActiveMembers),
		fmt.Sprintf("Funds:          %s", formatAmount(s.TotalFunds)),
		fmt.Sprintf("Contributions:  %s", formatAmount(s.TotalContributions)),
		fmt.Sprintf("Expenses:       %s", formatAmount(s.TotalExpenses)),
		fmt.Sprintf("Open complaints: %d", s.OpenComplaints),
		fmt.Sprintf("Upcoming meetings: %d", s.UpcomingMeetings),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderList(dest role.Destination) string {
	var b strings.Builder
	b.WriteString(m.renderHeader(dest))

	switch {
	case m.loadingData:
		b.WriteString(m.spin.View() + " Loading...\n")
	case m.lastError != "":
		b.WriteString(m.styles.Error.Render(m.lastError) + "\n")
	case m.haveTable:
		b.WriteString(m.table.View() + "\n")
	default:
		b.WriteString(m.styles.Muted.Render("Nothing to show") + "\n")
	}

	if dest == role.DestNotifications {
		b.WriteString(m.renderHelp("enter", "mark read", "esc", "back", "q", "quit"))
	} else {
		b.WriteString(m.renderHelp("esc", "back", "d", "home", "q", "quit"))
	}

	return m.styles.Border.Render(b.String())
}

func (m Model) renderHeader(dest role.Destination) string {
	title := titles[dest]
	if title == "" {
		title = string(dest)
	}

	header := m.styles.Title.Render(title)
	if m.unread > 0 {
		header += "  " + m.styles.Badge.Render(fmt.Sprintf("%d unread", m.unread))
	}
	return header + "\n"
}

// renderMenu lists the destinations the current role may open
func (m Model) renderMenu(r role.Role) string {
	var b strings.Builder
	b.WriteString(m.styles.Status.Render("Go to:") + "\n")

	order := []string{"m", "f", "x", "c", "g", "p", "a", "s", "u", "r", "n"}
	for _, key := range order {
		dest := navKeys[key]
		if !role.CanAccess(r, dest) {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			m.styles.Key.Render(key),
			m.styles.KeyDesc.Render(titles[dest]),
		))
	}
	return b.String()
}

func (m Model) renderHelp(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, m.styles.Key.Render(pairs[i])+" "+m.styles.KeyDesc.Render(pairs[i+1]))
	}
	return m.styles.Help.Render(strings.Join(parts, "  •  "))
}
