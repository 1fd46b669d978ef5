package ui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jinstaller/jinstaller/internal/jinstaller/domain"
	"golang.org/x/term"
)

// TerminalAsker asks the installer question on a terminal. It reports
// ToolUnavailable when In is not a terminal.
type TerminalAsker struct {
	In  *os.File
	Out io.Writer
}

func NewTerminalAsker() TerminalAsker {
	return TerminalAsker{In: os.Stdin, Out: os.Stderr}
}

func (a TerminalAsker) Ask(ctx context.Context) domain.Outcome {
	if a.In == nil || !term.IsTerminal(int(a.In.Fd())) {
		return domain.ToolUnavailable
	}

	p := tea.NewProgram(
		NewModel(domain.PromptTitle, domain.PromptMessage),
		tea.WithContext(ctx),
		tea.WithInput(a.In),
		tea.WithOutput(a.Out),
	)
	final, err := p.Run()
	if err != nil {
		return domain.Declined
	}
	if m, ok := final.(Model); ok {
		return m.Outcome
	}
	return domain.Declined
}
