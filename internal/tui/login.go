package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginForm holds the credentials form state
type loginForm struct {
	memberNo   textinput.Model
	password   textinput.Model
	focusIndex int
	submitting bool
	errMsg     string
}

func newLoginForm() loginForm {
	memberNo := textinput.New()
	memberNo.Placeholder = "member number"
	memberNo.CharLimit = 32
	memberNo.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{
		memberNo: memberNo,
		password: password,
	}
}

func (f loginForm) focusField(index int) loginForm {
	f.focusIndex = index
	if index == 0 {
		f.memberNo.Focus()
		f.password.Blur()
	} else {
		f.memberNo.Blur()
		f.password.Focus()
	}
	return f
}

// handleLoginKeys drives the login form
func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.submitting {
		return m, nil
	}

	switch msg.String() {
	case "q":
		// Intentionally falls through to the inputs: "q" is a
		// perfectly good character in a password.

	case "tab", "shift+tab", "up", "down":
		m.login = m.login.focusField(1 - m.login.focusIndex)
		return m, nil

	case "enter":
		// Validation failure is caught before dispatch: no network
		// call for an incomplete form.
		if m.login.memberNo.Value() == "" || m.login.password.Value() == "" {
			m.login.errMsg = "member number and password are required"
			return m, nil
		}
		m.login.errMsg = ""
		m.login.submitting = true
		return m, m.loginCmd(m.login.memberNo.Value(), m.login.password.Value())
	}

	var cmd tea.Cmd
	if m.login.focusIndex == 0 {
		m.login.memberNo, cmd = m.login.memberNo.Update(msg)
	} else {
		m.login.password, cmd = m.login.password.Update(msg)
	}
	return m, cmd
}

// loginCmd exchanges credentials with the backend
func (m Model) loginCmd(memberNo, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.Login(context.Background(), memberNo, password)
		return loginResultMsg{resp: resp, err: err}
	}
}
