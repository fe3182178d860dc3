// Package config loads the optional lantern.json project file, backed by
// a filesystem so tests can run against memory.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mandelsoft/vfs/pkg/vfs"
)

// DefaultFile is the project configuration filename.
const DefaultFile = "lantern.json"

// Default file layout of a deck project.
const (
	DefaultSource   = "slides.md"
	DefaultTemplate = "template.html"
	DefaultOutput   = "index.html"
)

// Config holds the project settings. Flags beat the file, the file beats
// the built-in defaults.
type Config struct {
	Title    string `json:"title,omitempty"`
	Style    string `json:"style,omitempty"`
	Source   string `json:"source,omitempty"`
	Template string `json:"template,omitempty"`
	Output   string `json:"output,omitempty"`

	fs   vfs.FileSystem
	path string
}

func New(fs vfs.FileSystem, path string) *Config {
	return &Config{fs: fs, path: path}
}

// Load reads the configuration file. A missing or empty file is fine and
// leaves the config untouched; a malformed one is an error.
func (c *Config) Load() error {
	data, err := vfs.ReadFile(c.fs, c.path)
	if err != nil {
		if vfs.IsErrNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed reading configuration file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed parsing %s: %w", c.path, err)
	}

	return nil
}

// Path returns the filesystem path the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// SetDefaults fills the file-layout fields that are still unset.
func (c *Config) SetDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}
