package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "lib_template", p.Name)
	assert.Equal(t, "lib-template", p.ShellCommand)
	assert.NotEmpty(t, p.Version)
	assert.NotEmpty(t, p.Title)
	assert.NotEmpty(t, p.Homepage)
}

func TestParse_RequiresNameAndCommand(t *testing.T) {
	_, err := Parse([]byte("version: 1.0.0\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("name: [oops\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode project metadata")
}

func TestVersionLine(t *testing.T) {
	p := Project{ShellCommand: "lib-template", Version: "1.2.3"}
	assert.Equal(t, "lib-template version 1.2.3", p.VersionLine())
}

func TestFields(t *testing.T) {
	p := Project{Name: "n", Title: "t", Version: "v", ShellCommand: "s"}
	fields := p.Fields()
	require.Len(t, fields, 7)
	assert.Equal(t, [2]string{"name", "n"}, fields[0])
	assert.Equal(t, [2]string{"shell_command", "s"}, fields[6])

	p.Commit = "abc123"
	p.Date = "2026-01-01"
	fields = p.Fields()
	require.Len(t, fields, 9)
	assert.Equal(t, [2]string{"commit", "abc123"}, fields[7])
	assert.Equal(t, [2]string{"built", "2026-01-01"}, fields[8])
}
