package dialog

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"

	"github.com/jinstaller/jinstaller/internal/jinstaller/domain"
)

// Launcher starts an external program and waits for it to exit.
type Launcher interface {
	Launch(ctx context.Context, name string, args []string) domain.LaunchResult
}

// ExecLauncher runs programs from PATH with stdin, stdout and stderr
// attached to the null device.
type ExecLauncher struct{}

func (ExecLauncher) Launch(ctx context.Context, name string, args []string) domain.LaunchResult {
	cmd := exec.CommandContext(ctx, name, args...)

	err := cmd.Run()
	if err == nil {
		return domain.LaunchResult{Status: domain.LaunchExited}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Killed by a signal reports -1, which still counts as a non-zero exit.
		return domain.LaunchResult{Status: domain.LaunchExited, ExitCode: exitErr.ExitCode(), Err: err}
	}

	if isNotFound(err) {
		return domain.LaunchResult{Status: domain.LaunchToolNotFound, Err: err}
	}

	return domain.LaunchResult{Status: domain.LaunchFailed, Err: err}
}

func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
