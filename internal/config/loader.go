package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the working
// and home directories.
const DefaultConfigFile = ".sentinel"

// XDGConfigFileName is the configuration file name inside XDGConfigDir.
const XDGConfigFileName = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile reads a YAML configuration file. Unknown keys are
// rejected so that a misspelled option does not silently fall back to its
// default. An empty file is valid and sets nothing.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cf File
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cf, nil
}

// XDGConfigFile returns the configuration path under the XDG config
// directory.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), XDGConfigFileName)
}

// FindConfigFile returns the configuration file to load, or "" when there
// is none. An explicit configPath is used only if it exists; otherwise
// .sentinel in the working directory, .sentinel in the home directory and
// the XDG config file are tried in that order.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func searchPaths() []string {
	paths := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, DefaultConfigFile))
	}
	return append(paths, XDGConfigFile())
}
