package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/readmegen/pkg/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed all:templates
var templatesFS embed.FS

// InitOptions seeds the generated readmegen.yml.
type InitOptions struct {
	Name        string
	Description string
	License     string
	Provider    string
	Force       bool
}

// Init writes a starter readmegen.yml into dir and returns its path.
func Init(dir string, opts InitOptions, logger *logrus.Logger) (string, error) {
	configDest := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(configDest); err == nil && !opts.Force {
		return "", fmt.Errorf("readmegen configuration already exists at %s (use --force to overwrite)", configDest)
	}

	if opts.Name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
		}
		opts.Name = filepath.Base(abs)
	}
	if opts.License == "" {
		opts.License = config.DefaultLicense
	}
	if !config.IsKnownLicense(opts.License) {
		return "", fmt.Errorf("invalid license '%s': must be one of %s", opts.License, strings.Join(config.Licenses, ", "))
	}
	if opts.Provider == "" {
		opts.Provider = string(config.DefaultProvider)
	}
	name, err := config.ParseProviderName(opts.Provider)
	if err != nil {
		return "", err
	}

	header, err := templatesFS.ReadFile("templates/" + config.ConfigFileName)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template: %w", err)
	}

	cfg := config.DefaultProject()
	cfg.Name = opts.Name
	cfg.Description = opts.Description
	cfg.License = opts.License
	cfg.Provider.Name = string(name)

	// Values come from flags and directory names, so they go through the encoder for quoting.
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", config.ConfigFileName, err)
	}
	rendered := append(header, body...)

	logger.Debugf("Writing %s", configDest)
	if err := os.WriteFile(configDest, rendered, 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", configDest, err)
	}
	logger.Infof("✓ Created configuration file: %s", configDest)

	return configDest, nil
}
