package termination

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bitranox/lib-template/internal/config"
	"github.com/bitranox/lib-template/internal/exitcode"
)

// fallbackMessage is printed when an error cannot describe itself.
const fallbackMessage = "Unknown error."

// signalOutcomes is the fixed table for signal-originated conditions.
var signalOutcomes = map[Kind]Outcome{
	KindInterrupt: {Code: exitcode.Interrupted, Diagnostic: "Aborted (interrupt)."},
	KindTerminate: {Code: exitcode.Terminated, Diagnostic: "Terminated (termination signal)."},
	KindBreak:     {Code: exitcode.Break, Diagnostic: "Terminated (platform break)."},
}

// Outcome is the exit code and diagnostic text for a resolved Condition.
// An empty Diagnostic means nothing is written.
type Outcome struct {
	Code       int
	Diagnostic string
}

// Resolver maps Conditions to Outcomes.
type Resolver struct {
	Settings *config.Settings

	// Classify maps a generic error to an exit code.
	Classify func(error) int

	// Stderr receives the diagnostic line.
	Stderr io.Writer
}

// NewResolver returns a Resolver using the default error classifier.
// A nil settings value means built-in defaults; a nil stderr means os.Stderr.
func NewResolver(settings *config.Settings, stderr io.Writer) *Resolver {
	if settings == nil {
		settings = config.NewDefaultSettings()
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Resolver{
		Settings: settings,
		Classify: exitcode.Classify,
		Stderr:   stderr,
	}
}

// Resolve computes the Outcome for c without writing anything.
//
// In traceback mode a generic failure is not converted: the Outcome carries
// the cause chain as its diagnostic and the original error is returned
// unchanged so the caller can propagate it.
func (r *Resolver) Resolve(c Condition) (Outcome, error) {
	if c.Kind.IsSignal() {
		return signalOutcomes[c.Kind], nil
	}

	switch c.Kind {
	case KindBrokenPipe:
		return Outcome{Code: r.Settings.BrokenPipeExitCode}, nil
	case KindExitRequest:
		return Outcome{Code: exitRequestCode(c.Payload)}, nil
	}

	if r.Settings.Traceback && reraises(c.Err) {
		trace := truncate(strings.Join(CauseChain(c.Err), "\n"), r.Settings.Limit())
		return Outcome{Diagnostic: trace}, c.Err
	}

	// Errors converted in traceback mode keep the longer limit.
	msg := truncate("Error: "+Message(c.Err), r.Settings.Limit())
	code := r.classify(c.Err)
	if code == exitcode.Success {
		// A failure never exits cleanly.
		code = exitcode.Error
	}
	return Outcome{Code: code, Diagnostic: msg}, nil
}

// Handle resolves c and writes its diagnostic to Stderr. It returns the exit
// code, or the original error when the failure must propagate.
func (r *Resolver) Handle(c Condition) (int, error) {
	out, reraise := r.Resolve(c)
	if out.Diagnostic != "" {
		line := out.Diagnostic
		if c.Kind == KindFailure && r.colorize() {
			red := color.New(color.FgRed)
			red.EnableColor()
			line = red.Sprint(line)
		}
		// Nothing useful can be done if stderr itself is gone.
		_, _ = fmt.Fprintln(r.Stderr, line)
	}
	return out.Code, reraise
}

// colorize reports whether diagnostics to Stderr may carry ANSI colors.
// The color package decides from stdout, which says nothing about Stderr.
func (r *Resolver) colorize() bool {
	if r.Settings.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := r.Stderr.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Resolver) classify(err error) (code int) {
	defer func() {
		if recover() != nil {
			code = exitcode.Error
		}
	}()
	if r.Classify == nil {
		return exitcode.Classify(err)
	}
	return r.Classify(err)
}

// reraises reports whether err is a generic failure that traceback mode
// should propagate. Errors carrying their own exit code (usage errors and
// the like) are always converted.
func reraises(err error) bool {
	if err == nil {
		return false
	}
	var coder exitcode.Coder
	return !errors.As(err, &coder)
}

// exitRequestCode interprets the payload of an explicit exit request.
func exitRequestCode(payload any) int {
	switch p := payload.(type) {
	case nil:
		return exitcode.Success
	case int:
		return p
	case int8:
		return int(p)
	case int16:
		return int(p)
	case int32:
		return int(p)
	case int64:
		return int(p)
	case uint:
		return unsignedCode(uint64(p))
	case uint8:
		return int(p)
	case uint16:
		return int(p)
	case uint32:
		return unsignedCode(uint64(p))
	case uint64:
		return unsignedCode(p)
	case uintptr:
		return unsignedCode(uint64(p))
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			return n
		}
	}
	return exitcode.Error
}

// unsignedCode converts an unsigned payload, treating values that do not fit
// an int as unusable.
func unsignedCode(n uint64) int {
	if n > math.MaxInt {
		return exitcode.Error
	}
	return int(n)
}

// Message returns err's text, falling back to a fixed message when the error
// is nil, empty or panics while formatting.
func Message(err error) (msg string) {
	defer func() {
		if recover() != nil {
			msg = fallbackMessage
		}
	}()
	if err == nil {
		return fallbackMessage
	}
	msg = strings.TrimSpace(err.Error())
	if msg == "" {
		return fallbackMessage
	}
	return msg
}

// CauseChain renders err and every error it wraps, one per line, indented by
// depth. Joined errors are expanded in order.
func CauseChain(err error) []string {
	var lines []string
	var walk func(e error, depth int)
	walk = func(e error, depth int) {
		if e == nil {
			return
		}
		prefix := "Error"
		if depth > 0 {
			prefix = strings.Repeat("  ", depth) + "caused by"
		}
		lines = append(lines, fmt.Sprintf("%s (%T): %s", prefix, e, Message(e)))

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner, depth+1)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap(), depth+1)
		}
	}
	walk(err, 0)
	return lines
}

// truncate shortens s to limit characters, noting how much was cut.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + fmt.Sprintf(" ... [truncated %d characters]", len(runes)-limit)
}
