package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jinstaller/jinstaller/internal/jinstaller/domain"
)

type keyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
	Toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab", "shift+tab"), key.WithHelp("←/→", "switch")),
	Submit: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
	Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// Model is a yes/no question rendered in the terminal.
type Model struct {
	Title   string
	Message string

	// YesFocused is true while the "Yes" button is highlighted.
	YesFocused bool
	Outcome    domain.Outcome
	Done       bool
}

func NewModel(title, message string) Model {
	return Model{
		Title:   title,
		Message: message,
		Outcome: domain.Declined,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func answer(o domain.Outcome) tea.Cmd {
	return func() tea.Msg {
		return domain.AnsweredMsg{Outcome: o}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case domain.AnsweredMsg:
		m.Outcome = msg.Outcome
		m.Done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if m.Done {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Yes):
			return m, answer(domain.Confirmed)
		case key.Matches(msg, keys.No), key.Matches(msg, keys.Quit):
			return m, answer(domain.Declined)
		case key.Matches(msg, keys.Toggle):
			m.YesFocused = !m.YesFocused
		case key.Matches(msg, keys.Submit):
			if m.YesFocused {
				return m, answer(domain.Confirmed)
			}
			return m, answer(domain.Declined)
		}
	}
	return m, nil
}
