package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/grovetools/readmegen/pkg/config"
	"github.com/grovetools/readmegen/pkg/prompt"
	"github.com/grovetools/readmegen/pkg/provider"
	"github.com/grovetools/readmegen/pkg/scanner"
	"github.com/sirupsen/logrus"
)

// Generator turns a Request into README content using a single provider.
type Generator struct {
	logger *logrus.Logger
	client provider.Client
}

// New resolves the provider client for cfg. Misconfiguration (unsupported provider,
// missing hosted credential) fails here, before any network activity.
func New(ctx context.Context, cfg config.Provider, logger *logrus.Logger) (*Generator, error) {
	client, err := provider.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithClient(client, logger), nil
}

// NewWithClient builds a Generator around an existing client.
func NewWithClient(client provider.Client, logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
	}
	return &Generator{logger: logger, client: client}
}

// Provider returns the configured backend name and model, e.g. "ollama/llama3".
func (g *Generator) Provider() string {
	return fmt.Sprintf("%s/%s", g.client.Name(), g.client.Model())
}

// Prompt builds the prompt for req, scanning the target directory if requested.
func (g *Generator) Prompt(req Request) prompt.Prompt {
	return BuildPrompt(req, g.logger)
}

// BuildPrompt is Prompt without a provider, used for dry runs.
func BuildPrompt(req Request, logger *logrus.Logger) prompt.Prompt {
	var scan *scanner.Result
	if req.Scan {
		dir := req.Directory
		if dir == "" {
			dir = "."
		}
		res := scanner.Scan(dir, logger)
		scan = &res
	}

	in := prompt.Input{
		ProjectName: req.ProjectName,
		Description: req.Description,
		Language:    prompt.ResolveLanguage(req.Language, scan),
		License:     req.License,
	}
	if in.Language != req.Language && logger != nil {
		logger.Debugf("Using detected language: %s", in.Language)
	}
	return prompt.Build(in, scan)
}

// Generate builds the prompt, calls the provider and returns the trimmed result.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	p := g.Prompt(req)

	g.logger.WithFields(logrus.Fields{
		"provider": g.client.Name(),
		"model":    g.client.Model(),
		"project":  req.ProjectName,
	}).Info("Generating README")

	content, err := g.client.Complete(ctx, p.System, p.User)
	if err != nil {
		g.logger.WithError(err).Error("LLM call failed")
		return "", fmt.Errorf("failed to generate README: %w", err)
	}

	return strings.TrimSpace(content), nil
}

// Save writes content verbatim to dir/filename, creating or truncating the file.
// An empty filename means README.md. It returns the written path.
func (g *Generator) Save(content, dir, filename string) (string, error) {
	path, err := Save(content, dir, filename)
	if err != nil {
		return "", err
	}
	g.logger.Infof("Successfully wrote README to %s", path)
	return path, nil
}

// Save writes content verbatim to dir/filename. See Generator.Save.
func Save(content, dir, filename string) (string, error) {
	if filename == "" {
		filename = config.DefaultOutputFile
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", &SaveError{Path: path, Err: err}
	}
	return path, nil
}

// Preview returns at most limit characters of content, marking truncation with "...".
func Preview(content string, limit int) string {
	runes := []rune(content)
	if limit <= 0 || len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}
