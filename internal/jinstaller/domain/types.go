package domain

const (
	PromptTitle   = "AI Suite Installer"
	PromptMessage = "Do you want to install the local AI suite (Ollama + Open WebUI)?"

	ShellPath  = "/usr/bin/bash"
	ScriptPath = "/opt/jinstaller/install.sh"
)

// InstallCommand returns the argument list run inside the target system.
// A fresh slice is returned so callers cannot alter the fixed command.
func InstallCommand() []string {
	return []string{ShellPath, ScriptPath}
}

// Outcome is the answer produced by a single dialog attempt
type Outcome int

const (
	Declined Outcome = iota
	Confirmed
	ToolUnavailable
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "Confirmed"
	case Declined:
		return "Declined"
	case ToolUnavailable:
		return "ToolUnavailable"
	default:
		return "Unknown"
	}
}

// LaunchStatus describes how spawning an external program ended
type LaunchStatus int

const (
	LaunchExited       LaunchStatus = iota // process ran, ExitCode is valid
	LaunchToolNotFound                     // executable is absent
	LaunchFailed                           // executable exists but could not be started
)

// LaunchResult is returned by a launcher instead of an error so that an
// absent tool can be switched on explicitly.
type LaunchResult struct {
	Status   LaunchStatus
	ExitCode int
	Err      error
}

// Succeeded reports whether the process ran and exited with status 0.
func (r LaunchResult) Succeeded() bool {
	return r.Status == LaunchExited && r.ExitCode == 0
}
