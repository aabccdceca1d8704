package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/guard"
	"github.com/sabhahq/sabha/internal/log"
	"github.com/sabhahq/sabha/internal/notify"
	"github.com/sabhahq/sabha/internal/role"
	"github.com/sabhahq/sabha/internal/session"
)

// Model represents the console application state
type Model struct {
	session *session.Store
	client  *api.Client
	poller  *notify.Poller
	logger  *log.Logger

	nav *Navigator

	// Navigation attempted while the session was still restoring;
	// replayed once verification resolves.
	pending role.Destination

	// UI state
	width    int
	height   int
	ready    bool
	quitting bool

	// Login form state
	login loginForm

	// Data state for the current view
	table       table.Model
	haveTable   bool
	summary     *api.ReportSummary
	loadingData bool
	lastError   string

	spin   spinner.Model
	unread int

	styles Styles
}

// Styles contains lipgloss styles for the console
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Badge    lipgloss.Style
	Help     lipgloss.Style
	Key      lipgloss.Style
	KeyDesc  lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple
			Padding(1, 2),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color("196")). // Red
			Foreground(lipgloss.Color("230")). // Light yellow
			Bold(true).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
		KeyDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
	}
}

// NewModel creates a console model. The caller has already run
// Restore on the session store; verification runs as a command so the
// optimistic view renders without waiting on the network.
func NewModel(store *session.Store, client *api.Client, poller *notify.Poller, logger *log.Logger) Model {
	m := Model{
		session: store,
		client:  client,
		poller:  poller,
		logger:  logger,
		nav:     NewNavigator(role.DestLogin),
		login:   newLoginForm(),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  DefaultStyles(),
	}

	snap := store.Snapshot()
	if snap.Authenticated() {
		// Optimistic landing; re-checked when verification resolves.
		m.nav = NewNavigator(role.HomeRoute(snap.Role()))
	}

	return m
}

// Messages

// sessionVerifiedMsg reports the outcome of the startup verification
type sessionVerifiedMsg struct {
	err error
}

// navigateMsg asks the guard to evaluate a destination
type navigateMsg struct {
	dest role.Destination
}

// UnauthorizedMsg is sent by the gateway's 401 hook after session state
// has been cleared.
type UnauthorizedMsg struct{}

// loginResultMsg carries the outcome of a login attempt
type loginResultMsg struct {
	resp *api.LoginResponse
	err  error
}

// tableDataMsg carries rows for a list view
type tableDataMsg struct {
	dest    role.Destination
	columns []table.Column
	rows    []table.Row
	err     error
}

// summaryMsg carries dashboard headline figures
type summaryMsg struct {
	summary *api.ReportSummary
	err     error
}

// unreadMsg refreshes the unread badge from the poller cache
type unreadMsg struct {
	count int
}

// markReadMsg reports the outcome of marking a notification read
type markReadMsg struct {
	err error
}

// Init initializes the console (required by Bubble Tea)
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, m.unreadCmd()}
	if m.session.Snapshot().Loading {
		cmds = append(cmds, m.verifyCmd())
	} else {
		cmds = append(cmds, m.enterCmd(m.nav.Current()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state (required by Bubble Tea)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sessionVerifiedMsg:
		return m.handleVerified(msg)

	case navigateMsg:
		return m.navigate(msg.dest, false)

	case UnauthorizedMsg:
		// Session state is already cleared by the hook; redirect
		// unless the login view is already showing, so a burst of
		// 401s cannot loop.
		if m.nav.Current() != role.DestLogin {
			m.nav.Replace(role.DestLogin)
			m.resetData()
		}
		return m, nil

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case tableDataMsg:
		if msg.dest != m.nav.Current() {
			// Stale load for a view we already left.
			return m, nil
		}
		m.loadingData = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.lastError = ""
		m.table = newTable(msg.columns, msg.rows, m.height)
		m.haveTable = true
		return m, nil

	case summaryMsg:
		m.loadingData = false
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		m.lastError = ""
		m.summary = msg.summary
		return m, nil

	case unreadMsg:
		m.unread = msg.count
		return m, m.unreadTickCmd()

	case markReadMsg:
		if msg.err != nil {
			m.lastError = msg.err.Error()
			return m, nil
		}
		return m, m.enterCmd(role.DestNotifications)
	}

	return m, nil
}

// handleVerified resolves the optimistic restore: the guard re-checks
// the current destination against the now-authoritative session.
func (m Model) handleVerified(msg sessionVerifiedMsg) (tea.Model, tea.Cmd) {
	dest := m.nav.Current()
	if m.pending != "" {
		dest = m.pending
		m.pending = ""
	}

	if msg.err != nil {
		m.nav.Replace(role.DestLogin)
		m.resetData()
		return m, nil
	}

	return m.navigate(dest, true)
}

func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		m.login.errMsg = msg.err.Error()
		return m, nil
	}

	// Session state is written before any navigation away from the
	// login view is triggered.
	if err := m.session.Login(msg.resp.Token, msg.resp.User); err != nil {
		m.login.errMsg = err.Error()
		return m, nil
	}

	m.login = newLoginForm()
	snap := m.session.Snapshot()
	return m.navigate(role.HomeRoute(snap.Role()), true)
}

// navigate runs the guard for a destination and follows its decision.
func (m Model) navigate(dest role.Destination, replace bool) (tea.Model, tea.Cmd) {
	decision := guard.Evaluate(m.session.Snapshot(), dest)
	m.logger.Debug("navigation evaluated",
		"destination", string(dest),
		"action", decision.Action.String(),
		"reason", decision.Reason,
	)

	switch decision.Action {
	case guard.Wait:
		m.pending = dest
		return m, nil

	case guard.Render:
		if replace {
			m.nav.Replace(dest)
		} else {
			m.nav.Push(dest)
		}
		m.resetData()
		cmd := m.enterCmd(dest)
		m.loadingData = cmd != nil
		return m, cmd

	case guard.RedirectLogin:
		m.nav.Replace(role.DestLogin)
		m.resetData()
		return m, nil

	case guard.RedirectHome:
		m.nav.Replace(decision.Target)
		m.resetData()
		cmd := m.enterCmd(decision.Target)
		m.loadingData = cmd != nil
		return m, cmd
	}

	return m, nil
}

func (m *Model) resetData() {
	m.haveTable = false
	m.summary = nil
	m.loadingData = false
	m.lastError = ""
}

// verifyCmd runs the background session verification
func (m Model) verifyCmd() tea.Cmd {
	store := m.session
	return func() tea.Msg {
		return sessionVerifiedMsg{err: store.Verify(context.Background())}
	}
}

// unreadCmd reads the unread count from the poller cache
func (m Model) unreadCmd() tea.Cmd {
	poller := m.poller
	return func() tea.Msg {
		return unreadMsg{count: poller.Unread()}
	}
}
