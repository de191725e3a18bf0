// Package config defines the lib-template settings model and default values.
//
// Settings are assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < environment (LIB_TEMPLATE_*) < CLI flags.
package config

import "github.com/bitranox/lib-template/internal/exitcode"

// Setting keys as they appear in config files. Environment variables use the
// upper-cased key with the LIB_TEMPLATE_ prefix (e.g. LIB_TEMPLATE_TRACEBACK).
const (
	KeyTraceback          = "traceback"
	KeyBrokenPipeExitCode = "broken_pipe_exit_code"
	KeyMessageLimit       = "message_limit"
	KeyTracebackLimit     = "traceback_limit"
	KeyNoColor            = "no_color"
)

// EnvPrefix is prepended to every setting key when read from the environment.
const EnvPrefix = "LIB_TEMPLATE"

// Settings holds every process-wide knob consumed by the exit-code resolver
// and the CLI.
type Settings struct {
	// Traceback re-raises generic failures instead of converting them.
	Traceback bool `mapstructure:"traceback"`

	// BrokenPipeExitCode is returned when stdout is closed by the reader.
	BrokenPipeExitCode int `mapstructure:"broken_pipe_exit_code"`

	// Diagnostic length limits, in characters.
	MessageLimit   int `mapstructure:"message_limit"`
	TracebackLimit int `mapstructure:"traceback_limit"`

	NoColor bool `mapstructure:"no_color"`
}

// NewDefaultSettings returns Settings populated with all built-in defaults.
func NewDefaultSettings() *Settings {
	return &Settings{
		Traceback:          false,
		BrokenPipeExitCode: exitcode.BrokenPipe,
		MessageLimit:       500,
		TracebackLimit:     10_000,
	}
}

// Limit returns the diagnostic length limit that applies to the current
// traceback mode.
func (s *Settings) Limit() int {
	if s.Traceback {
		return s.TracebackLimit
	}
	return s.MessageLimit
}
