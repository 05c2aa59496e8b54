// Package provider abstracts the text-generation backends a README can be generated with.
package provider

import (
	"context"
	"fmt"

	"github.com/grovetools/readmegen/pkg/config"
)

// Sampling parameters shared by every backend.
const (
	Temperature     float32 = 0.7
	HostedMaxTokens         = 2000
)

// Client turns a system+user instruction pair into generated text.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Name() config.ProviderName
	Model() string
}

// Error wraps any failure raised while calling a backend. Authentication, rate-limit,
// network and decoding failures are not distinguished.
type Error struct {
	Provider config.ProviderName
	Model    string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s/%s: %v", e.Provider, e.Model, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds the client for a resolved configuration. It performs no network activity.
func New(ctx context.Context, cfg config.Provider) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Name {
	case config.ProviderOpenAI:
		return NewOpenAI(ctx, cfg)
	case config.ProviderOllama:
		return NewOllama(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedProvider, cfg.Name)
	}
}
