// Package banner provides colored banner display functions for the
// lib-template CLI.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/bitranox/lib-template/internal/meta"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	keyColor    = color.New(color.FgBlue).SprintFunc()
)

const separatorWidth = 51

// PrintInfo writes the project information banner to w.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  Info for lib_template:
//	═══════════════════════════════════════════════════
//	  name          = lib_template
//	  version       = 0.1.0
//	  ...
//	═══════════════════════════════════════════════════
func PrintInfo(w io.Writer, p meta.Project) error {
	fields := p.Fields()
	width := 0
	for _, f := range fields {
		width = max(width, len(f[0]))
	}

	sep := headerColor(strings.Repeat("═", separatorWidth))
	var b strings.Builder
	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, headerColor(fmt.Sprintf("  Info for %s:", p.Name)))
	fmt.Fprintln(&b, sep)
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s = %s\n", keyColor(fmt.Sprintf("%-*s", width, f[0])), f[1])
	}
	fmt.Fprintln(&b, sep)

	// Single write so a closed pipe is reported once.
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write info: %w", err)
	}
	return nil
}
