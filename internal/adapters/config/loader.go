// Package config provides the configuration loader for pyguard.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/pyguard/internal/core/domain"
	"go.trai.ch/pyguard/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds pyguard.yaml in cwd or one of its parents and merges it over the
// defaults. Without a file the defaults are returned as is.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, found := findConfiguration(cwd)
	if !found {
		return cfg, nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares unknown version %q, reading it as version %s",
			configPath, file.Version, SchemaVersion))
	}

	apply(cfg, &file)
	cfg.Path = configPath

	if err := cfg.Policy.Validate(); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// apply overwrites the defaults with every field the file sets.
func apply(cfg *domain.Config, file *File) {
	if file.Interpreter != "" {
		cfg.Interpreter = file.Interpreter
	}
	if file.Prefix != "" {
		cfg.Policy.Prefix = file.Prefix
	}
	if file.Generic != "" {
		cfg.Policy.Generic = file.Generic
	}
	if file.UpgradeWindow != 0 {
		cfg.Policy.UpgradeWindow = file.UpgradeWindow
	}

	if file.Minimum == nil {
		return
	}
	if file.Minimum.Soft != nil {
		cfg.Policy.Soft = *file.Minimum.Soft
	}
	if file.Minimum.Hard != nil {
		cfg.Policy.Hard = *file.Minimum.Hard
	}
	if file.Minimum.Floor != nil {
		cfg.Policy.Floor = *file.Minimum.Floor
	}
}

// readAndUnmarshalYAML reads a YAML file and decodes it into the target struct.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)

	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
