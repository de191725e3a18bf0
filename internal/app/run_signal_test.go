//go:build !windows

package app

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// addBlockingCommand registers a command that ignores its context until the
// test ends, and returns a channel closed once the command is running.
// Cleanup releases the command and waits for it to return, so the abandoned
// goroutine is done before the runner's own cleanup resets shared state.
func addBlockingCommand(t *testing.T, r *Runner) <-chan struct{} {
	t.Helper()
	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})
	t.Cleanup(func() {
		close(release)
		<-finished
	})

	r.Root.AddCommand(&cobra.Command{
		Use: "block",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer close(finished)
			close(started)
			<-release
			return nil
		},
	})
	return started
}

func TestRun_InterruptDuringExecution(t *testing.T) {
	r, _, stderr := newRunner(t)
	started := addBlockingCommand(t, r)

	go func() {
		<-started
		time.Sleep(50 * time.Millisecond)
		_ = syscall.Kill(os.Getpid(), syscall.SIGINT)
	}()

	code, err := r.Run(context.Background(), []string{"block"})
	require.NoError(t, err)
	assert.Equal(t, 130, code)
	assert.Equal(t, "Aborted (interrupt).\n", stderr.String())
}

func TestRun_TerminateDuringExecution(t *testing.T) {
	r, _, stderr := newRunner(t)
	started := addBlockingCommand(t, r)

	go func() {
		<-started
		time.Sleep(50 * time.Millisecond)
		_ = syscall.Kill(os.Getpid(), syscall.SIGTERM)
	}()

	code, err := r.Run(context.Background(), []string{"--traceback", "block"})
	require.NoError(t, err, "signals are never re-raised")
	assert.Equal(t, 143, code)
	assert.Contains(t, stderr.String(), "Terminated (termination signal).")
}
