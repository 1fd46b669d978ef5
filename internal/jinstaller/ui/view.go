package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingTop(1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(lipgloss.Color("#888B7E")).
			Padding(0, 3).
			MarginTop(1).
			MarginRight(2)

	activeButtonStyle = buttonStyle.
				Background(lipgloss.Color("#F25D94"))

	statusSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusSkippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusFailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	if m.Done {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title) + "\n\n")
	b.WriteString(m.Message + "\n")

	yes, no := buttonStyle.Render("Yes"), activeButtonStyle.Render("No")
	if m.YesFocused {
		yes, no = activeButtonStyle.Render("Yes"), buttonStyle.Render("No")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, yes, no) + "\n")

	help := []string{keys.Yes.Help().Key + ": " + keys.Yes.Help().Desc,
		keys.No.Help().Key + ": " + keys.No.Help().Desc,
		keys.Toggle.Help().Key + ": " + keys.Toggle.Help().Desc,
		keys.Submit.Help().Key + ": " + keys.Submit.Help().Desc,
	}
	b.WriteString(footerStyle.Render(strings.Join(help, " • ")))

	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}

// Result is how a finished step is summarised on the console.
type Result int

const (
	ResultInstalled Result = iota
	ResultSkipped
	ResultFailed
)

// RenderResult returns a one-line, styled summary of the step.
func RenderResult(r Result, detail string) string {
	var label string
	switch r {
	case ResultInstalled:
		label = statusSuccessStyle.Render("Installed")
	case ResultSkipped:
		label = statusSkippedStyle.Render("Skipped")
	default:
		label = statusFailStyle.Render("Failed")
	}
	if detail == "" {
		return "AI suite: " + label
	}
	return "AI suite: " + label + " (" + detail + ")"
}
