// Package app runs the lib-template command tree and turns whatever ends the
// run (completion, error or signal) into a process exit code.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitranox/lib-template/internal/cli"
	"github.com/bitranox/lib-template/internal/exitcode"
	"github.com/bitranox/lib-template/internal/logging"
	sighandler "github.com/bitranox/lib-template/internal/signal"
	"github.com/bitranox/lib-template/internal/termination"
)

// Runner executes a command tree under signal supervision.
type Runner struct {
	Root    *cobra.Command
	Globals *cli.Globals

	// Stderr receives the diagnostic line; nil means os.Stderr.
	Stderr io.Writer
}

// Run executes the command tree with args and resolves the exit code.
//
// A termination signal ends the run immediately, even if the command is
// still working: the command goroutine is abandoned and left to finish or
// die with the process. When traceback mode propagates a failure, Run
// returns the original error and the caller is expected to panic with it.
func (r *Runner) Run(ctx context.Context, args []string) (int, error) {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var signals sighandler.Handler
	signals.Install(ctx, cancel)
	defer signals.Stop()

	if args == nil {
		args = []string{}
	}
	r.Root.SetArgs(args)

	done := make(chan error, 1)
	go func() {
		done <- r.Root.ExecuteContext(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = context.Cause(ctx)
	}

	// A signal that raced a finishing command still wins.
	var sigErr *termination.SignalError
	if cause := context.Cause(ctx); errors.As(cause, &sigErr) {
		err = cause
	}

	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	resolver := termination.NewResolver(r.Globals.Settings(), stderr)
	code, reraise := resolver.Handle(termination.FromError(err))
	if reraise == nil {
		logging.Debugf("exit %d (%s)", code, exitcode.Name(code))
	}
	return code, reraise
}
