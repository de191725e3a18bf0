//go:build !windows

package signal

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitranox/lib-template/internal/termination"
)

// waitForCause blocks until ctx is cancelled and returns its cause.
func waitForCause(t *testing.T, ctx context.Context) error {
	t.Helper()
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled within timeout")
		return nil
	}
}

// TestInstall_SIGINTCancelsWithInterrupt verifies SIGINT becomes an interrupt cause
func TestInstall_SIGINTCancelsWithInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	var h Handler
	h.Install(ctx, cancel)
	defer h.Stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT), "failed to send SIGINT")

	cause := waitForCause(t, ctx)
	var sigErr *termination.SignalError
	require.True(t, errors.As(cause, &sigErr), "cause should be a *SignalError, got %v", cause)
	assert.Equal(t, termination.KindInterrupt, sigErr.Kind)
	assert.Equal(t, syscall.SIGINT, sigErr.Signal)
}

// TestInstall_SIGTERMCancelsWithTerminate verifies SIGTERM becomes a terminate cause
func TestInstall_SIGTERMCancelsWithTerminate(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	var h Handler
	h.Install(ctx, cancel)
	defer h.Stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM), "failed to send SIGTERM")

	cause := waitForCause(t, ctx)
	assert.Equal(t, termination.KindTerminate, termination.FromError(cause).Kind)
}

// TestInstall_SIGPIPEIgnored verifies SIGPIPE neither kills the process nor cancels
func TestInstall_SIGPIPEIgnored(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	var h Handler
	h.Install(ctx, cancel)
	defer h.Stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGPIPE))

	select {
	case <-ctx.Done():
		t.Fatal("SIGPIPE must not cancel the context")
	case <-time.After(200 * time.Millisecond):
	}
}

// TestInstall_ContextCancellation verifies the listener exits without recording a signal cause
func TestInstall_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())

	var h Handler
	h.Install(ctx, cancel)
	defer h.Stop()

	cancel(nil)

	<-ctx.Done()
	assert.ErrorIs(t, context.Cause(ctx), context.Canceled)
}

// TestInstall_LastRegistrationWins verifies a second Install replaces the first
func TestInstall_LastRegistrationWins(t *testing.T) {
	firstCtx, firstCancel := context.WithCancelCause(context.Background())
	defer firstCancel(nil)
	secondCtx, secondCancel := context.WithCancelCause(context.Background())
	defer secondCancel(nil)

	var h Handler
	h.Install(firstCtx, firstCancel)
	h.Install(secondCtx, secondCancel)
	defer h.Stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	cause := waitForCause(t, secondCtx)
	assert.Equal(t, termination.KindInterrupt, termination.FromError(cause).Kind)

	select {
	case <-firstCtx.Done():
		t.Fatal("replaced registration must not receive the signal")
	case <-time.After(100 * time.Millisecond):
	}
}

// TestStop_Idempotent verifies Stop can be called repeatedly, including before Install
func TestStop_Idempotent(t *testing.T) {
	var h Handler
	h.Stop()

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)
	h.Install(ctx, cancel)
	h.Stop()
	h.Stop()
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(syscall.SIGINT)
	assert.True(t, ok)
	assert.Equal(t, termination.KindInterrupt, kind)

	kind, ok = KindOf(syscall.SIGTERM)
	assert.True(t, ok)
	assert.Equal(t, termination.KindTerminate, kind)

	_, ok = KindOf(syscall.SIGPIPE)
	assert.False(t, ok)
}
