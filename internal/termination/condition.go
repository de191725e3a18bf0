// Package termination turns the reason a process is ending into an exit code
// and a diagnostic message.
//
// A Condition is built once, either from an OS signal or from the error that
// reached the entrypoint, and resolved exactly once by a Resolver right
// before the process exits.
package termination

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// Kind identifies why the process is terminating.
type Kind int

// Condition kinds. The set is closed.
const (
	KindFailure Kind = iota
	KindInterrupt
	KindTerminate
	KindBreak
	KindBrokenPipe
	KindExitRequest
)

// String returns the kind name used in diagnostics and test output.
func (k Kind) String() string {
	switch k {
	case KindFailure:
		return "failure"
	case KindInterrupt:
		return "interrupt"
	case KindTerminate:
		return "terminate"
	case KindBreak:
		return "break"
	case KindBrokenPipe:
		return "broken-pipe"
	case KindExitRequest:
		return "exit-request"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsSignal reports whether the kind originates from an OS signal.
func (k Kind) IsSignal() bool {
	return k == KindInterrupt || k == KindTerminate || k == KindBreak
}

// Condition is the reason the process is ending.
type Condition struct {
	Kind Kind

	// Payload is the requested exit code of a KindExitRequest. nil means
	// absent; ints and numeric strings are honored, anything else maps to 1.
	Payload any

	// Err is the error behind a KindFailure.
	Err error
}

// Interrupt returns the condition for SIGINT / Ctrl-C.
func Interrupt() Condition { return Condition{Kind: KindInterrupt} }

// Terminate returns the condition for SIGTERM.
func Terminate() Condition { return Condition{Kind: KindTerminate} }

// Break returns the condition for a Windows console break.
func Break() Condition { return Condition{Kind: KindBreak} }

// BrokenPipe returns the condition for a write to a closed output pipe.
func BrokenPipe() Condition { return Condition{Kind: KindBrokenPipe} }

// Exit returns an explicit exit request. Pass nil for "no code".
func Exit(payload any) Condition { return Condition{Kind: KindExitRequest, Payload: payload} }

// Failure wraps a generic error.
func Failure(err error) Condition { return Condition{Kind: KindFailure, Err: err} }

// SignalError is the cancellation cause recorded when a termination signal
// arrives.
type SignalError struct {
	Kind   Kind
	Signal os.Signal
}

func (e *SignalError) Error() string {
	if e.Signal != nil {
		return fmt.Sprintf("received %s signal (%s)", e.Kind, e.Signal)
	}
	return fmt.Sprintf("received %s signal", e.Kind)
}

// ExitError requests a specific exit code without a diagnostic. Commands
// return it to stop early, the way a shell `exit N` would.
type ExitError struct {
	Payload any
}

func (e *ExitError) Error() string {
	if e.Payload == nil {
		return "exit requested"
	}
	return fmt.Sprintf("exit requested (%v)", e.Payload)
}

// ExitWith returns an *ExitError carrying payload.
func ExitWith(payload any) error {
	return &ExitError{Payload: payload}
}

// FromError converts the error that reached the entrypoint into a Condition.
// A nil error is an exit request without a code.
func FromError(err error) Condition {
	if err == nil {
		return Exit(nil)
	}

	var sigErr *SignalError
	if errors.As(err, &sigErr) {
		return Condition{Kind: sigErr.Kind}
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return Exit(exitErr.Payload)
	}

	if IsBrokenPipe(err) {
		return BrokenPipe()
	}

	return Failure(err)
}

// IsBrokenPipe reports whether err was caused by writing to a pipe whose
// reader has gone away.
func IsBrokenPipe(err error) bool {
	if errors.Is(err, syscall.EPIPE) {
		return true
	}
	for _, errno := range brokenPipeErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
