package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no dialog. It defaults to "No".
type ConfirmModel struct {
	Message   string
	Yes       bool
	Confirmed bool
	Canceled  bool
	keys      confirmKeyMap
	theme     *Theme
}

type confirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// NewConfirm creates a confirmation dialog.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		theme:   theme,
		keys: confirmKeyMap{
			Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
			No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
			Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "toggle")),
			Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		},
	}
}

// Update handles a key press.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Yes):
		m.Yes, m.Confirmed = true, true
	case key.Matches(k, m.keys.No):
		m.Yes, m.Confirmed = false, true
	case key.Matches(k, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(k, m.keys.Confirm):
		m.Confirmed = true
	case key.Matches(k, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	t := m.theme
	yes, no := t.Button, t.ButtonActive
	if m.Yes {
		yes, no = t.ButtonActive, t.Button
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, no.Render("No"), "  ", yes.Render("Yes"))

	return t.Box.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		buttons,
		"",
		t.Subtle.Render("y/n • ←/→ toggle • enter confirm • esc cancel"),
	))
}

// Done reports whether the dialog is finished.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result reports whether the user confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.Confirmed && m.Yes
}
