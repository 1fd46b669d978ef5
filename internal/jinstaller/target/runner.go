package target

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

const maxLineSize = 1024 * 1024

// OutputLogger receives each line the command prints.
type OutputLogger interface {
	Info(msg string, data any)
}

// CallError is returned when a command inside the target fails.
type CallError struct {
	Argv     []string
	ExitCode int
	Err      error
}

func (e *CallError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("target command %q exited with status %d", strings.Join(e.Argv, " "), e.ExitCode)
	}
	return fmt.Sprintf("target command %q failed: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Runner executes commands inside the target system.
type Runner struct {
	root   string
	logger OutputLogger
}

// NewRunner returns a Runner for the system mounted at root.
func NewRunner(root string, logger OutputLogger) (*Runner, error) {
	if _, _, err := BuildCommand(root, []string{"true"}); err != nil {
		return nil, err
	}
	return &Runner{root: root, logger: logger}, nil
}

// Call runs argv inside the target and waits for it. Combined stdout and
// stderr are forwarded to the logger line by line. Any non-zero exit is
// returned as a *CallError.
func (r *Runner) Call(ctx context.Context, argv []string) error {
	name, args, err := BuildCommand(r.root, argv)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("could not attach output: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return &CallError{Argv: argv, Err: err}
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if r.logger != nil {
			r.logger.Info(line, map[string]string{"command": argv[0]})
		}
	}
	if err := scanner.Err(); err != nil {
		if r.logger != nil {
			r.logger.Info("output no longer forwarded: "+err.Error(), map[string]string{"command": argv[0]})
		}
		// The child blocks on a full pipe unless the rest is read.
		_, _ = io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		callErr := &CallError{Argv: argv, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			callErr.ExitCode = exitErr.ExitCode()
		}
		return callErr
	}

	return nil
}

// scanLines splits on '\n' or '\r' so progress bars that redraw a single
// line are forwarded piece by piece.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
