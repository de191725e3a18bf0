// Package signal converts OS termination signals into termination conditions
// for the lib-template CLI.
//
// A Handler registers for SIGINT and SIGTERM (and SIGPIPE on Unix, so that
// writes to a closed pipe fail with EPIPE instead of killing the process).
// When a termination signal arrives it cancels the supplied context with a
// *termination.SignalError cause; nothing else happens on the signal path.
package signal

import (
	"context"
	"os"
	ossignal "os/signal"
	"sync"

	"github.com/bitranox/lib-template/internal/termination"
)

// Handler owns one signal registration. The zero value is ready to use.
type Handler struct {
	mu   sync.Mutex
	ch   chan os.Signal
	done chan struct{}
}

// Install registers the termination signals and starts a goroutine that
// cancels ctx with a *termination.SignalError when one arrives.
//
// Calling Install again replaces the previous registration: the last
// context/cancel pair wins. The goroutine exits after the first signal, when
// ctx is done, or when Stop is called.
//
// Example usage:
//
//	ctx, cancel := context.WithCancelCause(context.Background())
//	defer cancel(nil)
//	var h signal.Handler
//	h.Install(ctx, cancel)
//	defer h.Stop()
func (h *Handler) Install(ctx context.Context, cancel context.CancelCauseFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopLocked()

	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	ossignal.Notify(ch, notifySignals...)
	h.ch, h.done = ch, done

	go func() {
		for {
			select {
			case sig := <-ch:
				kind, ok := KindOf(sig)
				if !ok {
					// SIGPIPE and friends: the failing write reports it.
					continue
				}
				cancel(&termination.SignalError{Kind: kind, Signal: sig})
				return
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()
}

// Stop releases the registration and restores default signal behavior.
// Stop is safe to call more than once.
func (h *Handler) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
}

func (h *Handler) stopLocked() {
	if h.ch == nil {
		return
	}
	ossignal.Stop(h.ch)
	close(h.done)
	h.ch, h.done = nil, nil
}

// KindOf maps an OS signal to the termination kind it triggers. Signals that
// should not end the process report false.
func KindOf(sig os.Signal) (termination.Kind, bool) {
	kind, ok := signalKinds[sig]
	return kind, ok
}
