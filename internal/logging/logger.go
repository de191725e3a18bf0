// Package logging provides colored, leveled diagnostic output for the
// lib-template CLI.
//
// Every function writes a prefixed, color-coded line to the diagnostic
// writer (stderr unless replaced with SetOutput), keeping stdout reserved for
// command output. Debug output is suppressed unless verbose mode is enabled
// via SetVerbose(true).
package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

var (
	// verbose controls whether Debug() produces output. Commands may set it
	// from their own goroutine.
	verbose atomic.Bool

	out io.Writer = os.Stderr
)

// Color printers for each log level.
var (
	errorPrefix = color.New(color.FgRed).SprintFunc()
	debugPrefix = color.New(color.FgMagenta).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// SetOutput redirects all log output to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// DisableColor turns off ANSI colors for all output. Color is otherwise on
// only when stdout is a terminal.
func DisableColor() {
	color.NoColor = true
}

// Error prints an error message in red.
func Error(msg string) {
	fmt.Fprintln(out, errorPrefix("[ERROR]")+" "+msg)
}

// Debug prints a debug message, only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose.Load() {
		return
	}
	fmt.Fprintln(out, debugPrefix("[DEBUG]")+" "+msg)
}

// Debugf is Debug with fmt.Sprintf formatting.
func Debugf(format string, args ...any) {
	if !verbose.Load() {
		return
	}
	Debug(fmt.Sprintf(format, args...))
}
