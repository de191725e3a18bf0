// Package cli builds the lib-template command tree and its global flags.
package cli

import (
	"strconv"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bitranox/lib-template/internal/config"
	"github.com/bitranox/lib-template/internal/exitcode"
)

// Globals holds the global flag values and the settings resolved from them.
// It is shared between the command tree and the code that resolves the exit
// code after execution.
type Globals struct {
	Sources    config.Sources
	ConfigFile string

	traceback    bool
	tracebackSet bool

	mu       sync.Mutex
	settings *config.Settings
}

// NewGlobals returns Globals reading settings from src.
func NewGlobals(src config.Sources) *Globals {
	return &Globals{Sources: src}
}

// Settings returns the resolved settings. Until the command tree has
// resolved them (or when resolving failed) it returns the built-in defaults
// with the command line overrides applied, so --traceback still holds.
func (g *Globals) Settings() *config.Settings {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.settings != nil {
		return g.settings
	}
	s := config.NewDefaultSettings()
	if g.tracebackSet {
		s.Traceback = g.traceback
	}
	return s
}

func (g *Globals) setSettings(s *config.Settings) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.settings = s
}

// Overrides returns the setting values given explicitly on the command line.
func (g *Globals) Overrides() map[string]any {
	g.mu.Lock()
	defer g.mu.Unlock()

	overrides := make(map[string]any)
	if g.tracebackSet {
		overrides[config.KeyTraceback] = g.traceback
	}
	return overrides
}

// LoadSettings merges every settings source with the command line overrides
// and stores the result.
func (g *Globals) LoadSettings() (*config.Settings, error) {
	src := g.Sources
	src.Explicit = g.ConfigFile
	src.Overrides = g.Overrides()

	s, err := config.Load(src)
	if err != nil {
		return nil, err
	}
	g.setSettings(s)
	return s, nil
}

// BindFlags registers the global persistent flags on cmd.
//
// --traceback and --no-traceback write the same value; whichever appears
// last on the command line wins.
func BindFlags(cmd *cobra.Command, g *Globals) {
	flags := cmd.PersistentFlags()

	tb := flags.VarPF(&tracebackValue{g: g}, "traceback", "", "Show the full error cause chain and re-raise errors")
	tb.NoOptDefVal = "true"
	noTB := flags.VarPF(&tracebackValue{g: g, negate: true}, "no-traceback", "", "Print a one-line error message only (default)")
	noTB.NoOptDefVal = "true"

	flags.StringVar(&g.ConfigFile, "config", "", "Path to an additional config file")
}

// tracebackValue backs both --traceback and --no-traceback.
type tracebackValue struct {
	g      *Globals
	negate bool
}

var _ pflag.Value = (*tracebackValue)(nil)

func (v *tracebackValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.g.mu.Lock()
	defer v.g.mu.Unlock()
	v.g.traceback = b != v.negate
	v.g.tracebackSet = true
	return nil
}

func (v *tracebackValue) String() string {
	if v.g == nil {
		return "false"
	}
	v.g.mu.Lock()
	defer v.g.mu.Unlock()
	if !v.g.tracebackSet {
		return "false"
	}
	return strconv.FormatBool(v.g.traceback != v.negate)
}

func (v *tracebackValue) Type() string { return "bool" }

// IsBoolFlag lets the flag appear without a value.
func (v *tracebackValue) IsBoolFlag() bool { return true }

// UsageError wraps flag and argument errors so they exit with the usage code.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode implements exitcode.Coder.
func (e *UsageError) ExitCode() int { return exitcode.Usage }

// flagError is installed as the cobra flag error handler.
func flagError(_ *cobra.Command, err error) error {
	return &UsageError{Err: err}
}

// noArgs rejects positional arguments with a UsageError.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}
