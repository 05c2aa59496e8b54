package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/grovetools/readmegen/pkg/config"
)

// OpenAI sends chat completions to the hosted OpenAI API (or a compatible endpoint).
type OpenAI struct {
	model     string
	chatModel model.BaseChatModel
}

// NewOpenAI creates a hosted client. cfg must carry an API key.
func NewOpenAI(ctx context.Context, cfg config.Provider) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key not found; set %s", config.ErrMissingCredential, config.EnvOpenAIKey)
	}

	maxTokens := HostedMaxTokens
	temperature := Temperature
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI chat model: %w", err)
	}

	return NewOpenAIWithModel(cfg.Model, chatModel), nil
}

// NewOpenAIWithModel wraps an existing chat model.
func NewOpenAIWithModel(modelName string, chatModel model.BaseChatModel) *OpenAI {
	return &OpenAI{model: modelName, chatModel: chatModel}
}

func (c *OpenAI) Name() config.ProviderName { return config.ProviderOpenAI }

func (c *OpenAI) Model() string { return c.model }

// Complete returns the content of the first completion.
func (c *OpenAI) Complete(ctx context.Context, system, user string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(user),
	}

	out, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", c.wrap(err)
	}
	if out == nil {
		return "", c.wrap(errors.New("empty completion"))
	}
	return out.Content, nil
}

func (c *OpenAI) wrap(err error) error {
	return &Error{Provider: config.ProviderOpenAI, Model: c.model, Err: err}
}
