package dialog

import (
	"context"

	"github.com/jinstaller/jinstaller/internal/jinstaller/domain"
)

// Tool is a GUI program that asks a yes/no question and answers through
// its exit code.
type Tool struct {
	Name     string
	Args     func(title, message string) []string
	Launcher Launcher
}

// Kdialog returns the KDE question dialog.
func Kdialog(l Launcher) Tool {
	return Tool{
		Name: "kdialog",
		Args: func(title, message string) []string {
			return []string{"--yesno", message, "--title", title}
		},
		Launcher: l,
	}
}

// Zenity returns the GNOME question dialog.
func Zenity(l Launcher) Tool {
	return Tool{
		Name: "zenity",
		Args: func(title, message string) []string {
			return []string{"--question", "--title=" + title, "--text=" + message}
		},
		Launcher: l,
	}
}

// Ask shows the fixed installer question. Only a missing executable yields
// ToolUnavailable; every other failure is a decline.
func (t Tool) Ask(ctx context.Context) domain.Outcome {
	res := t.Launcher.Launch(ctx, t.Name, t.Args(domain.PromptTitle, domain.PromptMessage))
	switch res.Status {
	case domain.LaunchToolNotFound:
		return domain.ToolUnavailable
	case domain.LaunchExited:
		if res.Succeeded() {
			return domain.Confirmed
		}
		return domain.Declined
	default:
		return domain.Declined
	}
}
