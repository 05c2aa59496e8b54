package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ProviderName selects a text-generation backend.
type ProviderName string

const (
	ProviderOllama ProviderName = "ollama" // local daemon, no credential
	ProviderOpenAI ProviderName = "openai" // hosted API, credential required
)

// Environment variables consulted when a value is not given explicitly.
const (
	EnvProvider      = "AI_PROVIDER"
	EnvModel         = "MODEL_NAME"
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
	EnvOllamaHost    = "OLLAMA_HOST"
)

const (
	DefaultProvider    = ProviderOllama
	DefaultOllamaModel = "llama3"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultOllamaHost  = "http://localhost:11434"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrMissingCredential   = errors.New("missing provider credential")
)

// Provider is the resolved backend configuration. It is immutable once resolved.
type Provider struct {
	Name    ProviderName
	Model   string
	APIKey  string
	BaseURL string
}

// ParseProviderName normalizes a provider selector, accepting "hosted" and "local" as aliases.
func ParseProviderName(s string) (ProviderName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ollama", "local":
		return ProviderOllama, nil
	case "openai", "hosted":
		return ProviderOpenAI, nil
	default:
		return "", fmt.Errorf("%w: %q (use 'openai' or 'ollama')", ErrUnsupportedProvider, s)
	}
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ResolveProvider fills every field of explicit that is empty from getenv, then from the
// built-in defaults, and validates the result. A nil getenv reads the process environment.
func ResolveProvider(explicit Provider, getenv func(string) string) (Provider, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	rawName := string(explicit.Name)
	if rawName == "" {
		rawName = getenv(EnvProvider)
	}
	if rawName == "" {
		rawName = string(DefaultProvider)
	}
	name, err := ParseProviderName(rawName)
	if err != nil {
		return Provider{}, err
	}

	resolved := Provider{
		Name:    name,
		Model:   firstNonEmpty(explicit.Model, getenv(EnvModel)),
		APIKey:  explicit.APIKey,
		BaseURL: explicit.BaseURL,
	}

	switch name {
	case ProviderOpenAI:
		if resolved.Model == "" {
			resolved.Model = DefaultOpenAIModel
		}
		resolved.APIKey = firstNonEmpty(resolved.APIKey, getenv(EnvOpenAIKey))
		resolved.BaseURL = firstNonEmpty(resolved.BaseURL, getenv(EnvOpenAIBaseURL))
	case ProviderOllama:
		if resolved.Model == "" {
			resolved.Model = DefaultOllamaModel
		}
		resolved.BaseURL = firstNonEmpty(resolved.BaseURL, getenv(EnvOllamaHost), DefaultOllamaHost)
	}

	if err := resolved.Validate(); err != nil {
		return Provider{}, err
	}
	return resolved, nil
}

// Validate checks the invariants of a resolved configuration.
func (p Provider) Validate() error {
	switch p.Name {
	case ProviderOllama:
	case ProviderOpenAI:
		if p.APIKey == "" {
			return fmt.Errorf("%w: OpenAI API key not found; set %s in the environment or a .env file", ErrMissingCredential, EnvOpenAIKey)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedProvider, p.Name)
	}
	if p.Model == "" {
		return fmt.Errorf("model name is required for provider %s", p.Name)
	}
	return nil
}

// IsConfigError reports whether err is a construction-time misconfiguration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrUnsupportedProvider) || errors.Is(err, ErrMissingCredential)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
