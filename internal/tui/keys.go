package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sabhahq/sabha/internal/role"
)

// navKeys maps shortcut keys to destinations. The guard still decides
// whether the destination renders; keys only express intent.
var navKeys = map[string]role.Destination{
	"m": role.DestMembers,
	"f": role.DestFunds,
	"x": role.DestExpenses,
	"c": role.DestContributions,
	"g": role.DestMeetings,
	"p": role.DestComplaints,
	"a": role.DestAnnouncements,
	"s": role.DestSuggestions,
	"u": role.DestAuditLogs,
	"r": role.DestReports,
	"n": role.DestNotifications,
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// The login form owns the keyboard while it is showing.
	if m.nav.Current() == role.DestLogin {
		return m.handleLoginKeys(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.nav.Back() {
			// Re-run the guard for the view we fell back to; the
			// session may have changed while we were away.
			return m.navigate(m.nav.Current(), true)
		}
		return m, nil

	case "d":
		snap := m.session.Snapshot()
		return m.navigate(role.HomeRoute(snap.Role()), false)

	case "enter":
		if m.nav.Current() == role.DestNotifications && m.haveTable {
			return m, m.markSelectedReadCmd()
		}
	}

	if dest, ok := navKeys[msg.String()]; ok {
		return m.navigate(dest, false)
	}

	// Remaining keys drive the table cursor.
	if m.haveTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}
