package banner

import (
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitranox/lib-template/internal/meta"
)

func init() {
	color.NoColor = true
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

// TestPrintInfo verifies the banner includes every metadata field
func TestPrintInfo(t *testing.T) {
	p := meta.Project{
		Name:         "lib_template",
		Title:        "Template",
		Version:      "1.2.3",
		Homepage:     "https://example.com",
		Author:       "someone",
		AuthorEmail:  "someone@example.com",
		ShellCommand: "lib-template",
	}

	var buf bytes.Buffer
	require.NoError(t, PrintInfo(&buf, p))
	out := buf.String()

	assert.Contains(t, out, "Info for lib_template:")
	assert.Contains(t, out, "name          = lib_template")
	assert.Contains(t, out, "version       = 1.2.3")
	assert.Contains(t, out, "author_email  = someone@example.com")
	assert.Contains(t, out, "shell_command = lib-template")
	assert.Equal(t, 3, strings.Count(out, strings.Repeat("═", separatorWidth)))
}

// TestPrintInfo_BuildFields verifies commit and build date appear when set
func TestPrintInfo_BuildFields(t *testing.T) {
	p := meta.Project{Name: "x", ShellCommand: "x", Commit: "abc123", Date: "today"}

	var buf bytes.Buffer
	require.NoError(t, PrintInfo(&buf, p))
	assert.Contains(t, buf.String(), "abc123")
	assert.Contains(t, buf.String(), "today")
}

// TestPrintInfo_WriteError verifies write failures are returned, not swallowed
func TestPrintInfo_WriteError(t *testing.T) {
	err := PrintInfo(brokenWriter{}, meta.Project{Name: "x", ShellCommand: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, syscall.EPIPE))
}
