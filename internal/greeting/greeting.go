// Package greeting holds the stub behaviors used to exercise the CLI: one
// that succeeds and one that always fails.
package greeting

import (
	"errors"
	"fmt"
	"io"
)

// ErrIntentional is returned by Fail.
var ErrIntentional = errors.New("I should fail")

// Hello writes the standard greeting to w.
func Hello(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Hello World"); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}

// Fail always returns ErrIntentional.
func Fail() error {
	return ErrIntentional
}
