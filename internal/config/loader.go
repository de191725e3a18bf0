package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bitranox/lib-template/internal/exitcode"
)

// Sources lists where Load looks for settings. Empty paths are skipped.
type Sources struct {
	DotEnv   string // .env file merged into the process environment
	Global   string // per-user config file, optional
	Project  string // config file in the working directory, optional
	Explicit string // --config; must exist when set

	// Overrides holds values set explicitly on the command line, keyed by
	// setting key. They win over every other source.
	Overrides map[string]any
}

// DefaultSources returns the conventional lookup locations.
func DefaultSources() Sources {
	s := Sources{
		DotEnv:  ".env",
		Project: ".lib-template.yaml",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		s.Global = filepath.Join(dir, "lib-template", "config.yaml")
	}
	return s
}

// Load assembles Settings by merging sources in order of increasing priority:
//
//  1. Built-in defaults
//  2. Global config file
//  3. Project config file
//  4. Explicit config file
//  5. Environment (after merging the optional .env file)
//  6. CLI overrides
//
// Missing global/project/.env files are not an error. A missing explicit
// file is.
func Load(src Sources) (*Settings, error) {
	if src.DotEnv != "" {
		// godotenv.Load never overrides variables already in the environment.
		if err := godotenv.Load(src.DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("dotenv: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	for _, layer := range []struct {
		name     string
		path     string
		required bool
	}{
		{"global config", src.Global, false},
		{"project config", src.Project, false},
		{"explicit config", src.Explicit, true},
	} {
		if layer.path == "" {
			continue
		}
		if err := mergeFile(v, layer.path); err != nil {
			if !layer.required && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%s: %w", layer.name, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, value := range src.Overrides {
		v.Set(key, value)
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that numeric settings are within range.
func (s *Settings) Validate() error {
	if s.BrokenPipeExitCode < 0 || s.BrokenPipeExitCode > 255 {
		return fmt.Errorf("%s must be within 0..255, got %d: %w",
			KeyBrokenPipeExitCode, s.BrokenPipeExitCode, exitcode.ErrInvalidArgument)
	}
	if s.MessageLimit <= 0 {
		return fmt.Errorf("%s must be positive, got %d: %w",
			KeyMessageLimit, s.MessageLimit, exitcode.ErrInvalidArgument)
	}
	if s.TracebackLimit <= 0 {
		return fmt.Errorf("%s must be positive, got %d: %w",
			KeyTracebackLimit, s.TracebackLimit, exitcode.ErrInvalidArgument)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := NewDefaultSettings()
	v.SetDefault(KeyTraceback, d.Traceback)
	v.SetDefault(KeyBrokenPipeExitCode, d.BrokenPipeExitCode)
	v.SetDefault(KeyMessageLimit, d.MessageLimit)
	v.SetDefault(KeyTracebackLimit, d.TracebackLimit)
	v.SetDefault(KeyNoColor, d.NoColor)
}

// mergeFile layers the config file at path on top of what v already holds.
func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
