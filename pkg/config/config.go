package config

//go:generate go run ../../tools/schema-generator

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ConfigFileName = "readmegen.yml"

const (
	DefaultLicense    = "MIT"
	DefaultOutputFile = "README.md"
)

// ProjectConfig describes a project's README settings as stored in readmegen.yml.
// Credentials are never read from this file.
type ProjectConfig struct {
	Name        string         `yaml:"name" jsonschema:"description=Project name used as the README title"`
	Description string         `yaml:"description" jsonschema:"description=Short free-text description of the project"`
	Language    string         `yaml:"language,omitempty" jsonschema:"description=Primary language; detected from the directory when empty"`
	License     string         `yaml:"license,omitempty" jsonschema:"enum=MIT,enum=Apache-2.0,enum=GPL-3.0,enum=BSD-3-Clause,enum=Unlicense,enum=MPL-2.0,default=MIT"`
	Scan        *bool          `yaml:"scan,omitempty" jsonschema:"description=Inspect the top-level directory for extra context,default=true"`
	Output      string         `yaml:"output,omitempty" jsonschema:"description=Output file name,default=README.md"`
	Provider    ProviderConfig `yaml:"provider,omitempty"`
}

// ProviderConfig is the provider block of readmegen.yml.
type ProviderConfig struct {
	Name    string `yaml:"name,omitempty" jsonschema:"enum=ollama,enum=openai,enum=local,enum=hosted"`
	Model   string `yaml:"model,omitempty"`
	BaseURL string `yaml:"base_url,omitempty" jsonschema:"description=OpenAI base URL or Ollama host"`
}

// DefaultProject returns a ProjectConfig with the built-in defaults applied.
func DefaultProject() *ProjectConfig {
	scan := true
	return &ProjectConfig{
		License: DefaultLicense,
		Scan:    &scan,
		Output:  DefaultOutputFile,
	}
}

// ScanEnabled reports whether directory scanning is on, defaulting to true.
func (c *ProjectConfig) ScanEnabled() bool {
	return c.Scan == nil || *c.Scan
}

// LoadProject reads readmegen.yml from dir. It returns os.ErrNotExist when the file is absent.
func LoadProject(dir string) (*ProjectConfig, error) {
	return LoadProjectFile(filepath.Join(dir, ConfigFileName))
}

// LoadProjectFile reads a project config from an explicit path.
func LoadProjectFile(configPath string) (*ProjectConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	cfg := DefaultProject()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	if cfg.License == "" {
		cfg.License = DefaultLicense
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutputFile
	}
	if !IsKnownLicense(cfg.License) {
		return nil, fmt.Errorf("invalid license %q in %s: must be one of %v", cfg.License, configPath, Licenses)
	}

	return cfg, nil
}

// Save writes the config to dir/readmegen.yml.
func (c *ProjectConfig) Save(dir string) (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", ConfigFileName, err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
