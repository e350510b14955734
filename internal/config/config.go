// Package config handles run configuration loading and defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values applied to empty configuration fields.
const (
	DefaultInput     = "data.geojson"
	DefaultOutputDir = "."
	DefaultKeyField  = "MNTN_NM"
	DefaultFallback  = "unknown"
	DefaultExtension = ".geojson"
)

// Config represents the configuration file structure.
type Config struct {
	Input     string   `yaml:"input,omitempty"`
	OutputDir string   `yaml:"output_dir,omitempty"`
	KeyField  string   `yaml:"key_field,omitempty"`
	Fallback  string   `yaml:"fallback,omitempty"`
	Extension string   `yaml:"extension,omitempty"` // with or without leading dot
	Limit     []string `yaml:"limit,omitempty"`
	KeepGoing bool     `yaml:"keep_going,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills empty fields. The extension follows the input file
// unless set explicitly.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.KeyField == "" {
		c.KeyField = DefaultKeyField
	}
	if c.Fallback == "" {
		c.Fallback = DefaultFallback
	}

	if c.Extension == "" {
		c.Extension = filepath.Ext(c.Input)
	}
	if c.Extension == "" || c.Extension == "." {
		c.Extension = DefaultExtension
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
}
