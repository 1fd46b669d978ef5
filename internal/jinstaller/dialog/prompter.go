package dialog

import (
	"context"

	"github.com/jinstaller/jinstaller/internal/jinstaller/domain"
)

// Asker produces one answer to the installer question.
type Asker interface {
	Ask(ctx context.Context) domain.Outcome
}

// Prompter tries askers in order until one of them is available.
type Prompter struct {
	askers []Asker
}

// NewPrompter returns a prompter trying kdialog, then zenity. A non-nil
// fallback is asked only when neither tool is installed.
func NewPrompter(l Launcher, fallback Asker) *Prompter {
	askers := []Asker{Kdialog(l), Zenity(l)}
	if fallback != nil {
		askers = append(askers, fallback)
	}
	return &Prompter{askers: askers}
}

// Confirm reports whether the user agreed. It is false when no asker could
// be shown.
func (p *Prompter) Confirm(ctx context.Context) bool {
	return p.Outcome(ctx) == domain.Confirmed
}

// Outcome returns the answer of the first available asker, or
// ToolUnavailable when none could be shown.
func (p *Prompter) Outcome(ctx context.Context) domain.Outcome {
	for _, a := range p.askers {
		if o := a.Ask(ctx); o != domain.ToolUnavailable {
			return o
		}
	}
	return domain.ToolUnavailable
}
