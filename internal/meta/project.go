// Package meta exposes the project metadata shown by `lib-template info`
// and `--version`.
package meta

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed project.yaml
var projectYAML []byte

// Project describes the distribution.
type Project struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Version      string `yaml:"version"`
	Homepage     string `yaml:"homepage"`
	Author       string `yaml:"author"`
	AuthorEmail  string `yaml:"author_email"`
	ShellCommand string `yaml:"shell_command"`

	// Build information injected via ldflags; empty in development builds.
	Commit string `yaml:"-"`
	Date   string `yaml:"-"`
}

// Parse decodes project metadata from YAML. Name and ShellCommand are
// required.
func Parse(data []byte) (Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("decode project metadata: %w", err)
	}
	if p.Name == "" || p.ShellCommand == "" {
		return Project{}, fmt.Errorf("project metadata: name and shell_command are required")
	}
	return p, nil
}

// Load returns the embedded project metadata.
func Load() (Project, error) {
	return Parse(projectYAML)
}

// VersionLine is the text printed by --version.
func (p Project) VersionLine() string {
	return fmt.Sprintf("%s version %s", p.ShellCommand, p.Version)
}

// Fields returns the metadata as ordered key/value pairs for display.
func (p Project) Fields() [][2]string {
	fields := [][2]string{
		{"name", p.Name},
		{"title", p.Title},
		{"version", p.Version},
		{"homepage", p.Homepage},
		{"author", p.Author},
		{"author_email", p.AuthorEmail},
		{"shell_command", p.ShellCommand},
	}
	if p.Commit != "" {
		fields = append(fields, [2]string{"commit", p.Commit})
	}
	if p.Date != "" {
		fields = append(fields, [2]string{"built", p.Date})
	}
	return fields
}
