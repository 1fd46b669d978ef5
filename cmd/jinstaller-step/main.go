package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jinstaller/jinstaller/internal/jinstaller/config"
	"github.com/jinstaller/jinstaller/internal/jinstaller/dialog"
	"github.com/jinstaller/jinstaller/internal/jinstaller/domain"
	"github.com/jinstaller/jinstaller/internal/jinstaller/logging"
	"github.com/jinstaller/jinstaller/internal/jinstaller/step"
	"github.com/jinstaller/jinstaller/internal/jinstaller/target"
	"github.com/jinstaller/jinstaller/internal/jinstaller/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	logger := logging.NewFromConfig(logging.Config{
		Debug:   cfg.Debug,
		LogFile: cfg.LogFile,
		NoColor: cfg.NoColor,
	})
	defer logger.Close()

	logger.Debug("Step started", cfg)

	runner, err := target.NewRunner(cfg.RootMountPoint, logger)
	if err != nil {
		logger.Error("Invalid target", err)
		os.Exit(1)
	}

	var fallback dialog.Asker
	if cfg.TerminalFallback {
		fallback = ui.NewTerminalAsker()
	}
	prompter := dialog.NewPrompter(dialog.ExecLauncher{}, fallback)

	// Remember the answer so the summary can tell a skip from an install.
	confirmer := &recordingConfirmer{Confirmer: prompter}

	if err := step.New(logger, confirmer, runner).Run(context.Background()); err != nil {
		logger.Error("Step failed", err)
		fmt.Fprintln(os.Stderr, ui.RenderResult(ui.ResultFailed, failureDetail(err)))
		// defers do not run past os.Exit
		logger.Close()
		os.Exit(1)
	}

	if confirmer.confirmed {
		fmt.Fprintln(os.Stderr, ui.RenderResult(ui.ResultInstalled, domain.ScriptPath))
	} else {
		fmt.Fprintln(os.Stderr, ui.RenderResult(ui.ResultSkipped, ""))
	}
}

type recordingConfirmer struct {
	step.Confirmer
	confirmed bool
}

func (r *recordingConfirmer) Confirm(ctx context.Context) bool {
	r.confirmed = r.Confirmer.Confirm(ctx)
	return r.confirmed
}

func failureDetail(err error) string {
	var callErr *target.CallError
	if errors.As(err, &callErr) && callErr.ExitCode != 0 {
		return fmt.Sprintf("exit status %d", callErr.ExitCode)
	}
	return err.Error()
}
