// Package step implements the installer step that offers the local AI suite
// and, when accepted, runs its install script inside the target system.
package step

import (
	"context"

	"github.com/jinstaller/jinstaller/internal/jinstaller/domain"
)

// Tracer records diagnostic lines for the installer log.
type Tracer interface {
	Trace(msg string)
}

// Confirmer asks the user whether to install.
type Confirmer interface {
	Confirm(ctx context.Context) bool
}

// TargetRunner executes a command inside the target system and fails on a
// non-zero exit.
type TargetRunner interface {
	Call(ctx context.Context, argv []string) error
}

const (
	traceAsking   = "jinstaller: asking user whether to install AI suite."
	traceDeclined = "jinstaller: user chose not to install AI suite (or no dialog available)."
	traceRunning  = "jinstaller: running " + domain.ScriptPath + " inside target system."
)

type Step struct {
	tracer    Tracer
	confirmer Confirmer
	runner    TargetRunner
}

func New(tracer Tracer, confirmer Confirmer, runner TargetRunner) *Step {
	return &Step{tracer: tracer, confirmer: confirmer, runner: runner}
}

// Run asks the user and runs the install script if they agree. Errors from
// the target runner are returned as is.
func (s *Step) Run(ctx context.Context) error {
	s.tracer.Trace(traceAsking)

	if !s.confirmer.Confirm(ctx) {
		s.tracer.Trace(traceDeclined)
		return nil
	}

	s.tracer.Trace(traceRunning)
	return s.runner.Call(ctx, domain.InstallCommand())
}
