package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/grovetools/readmegen/pkg/config"
)

// Ollama talks to a local Ollama daemon's chat endpoint.
type Ollama struct {
	host       string
	model      string
	httpClient *http.Client
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options"`
}

type ollamaOptions struct {
	Temperature float32 `json:"temperature"`
}

type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
	Error   string        `json:"error,omitempty"`
}

// NewOllama creates a local client. The HTTP client has no timeout.
func NewOllama(cfg config.Provider) *Ollama {
	host := cfg.BaseURL
	if host == "" {
		host = config.DefaultOllamaHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	return &Ollama{
		host:       strings.TrimRight(host, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{},
	}
}

func (c *Ollama) Name() config.ProviderName { return config.ProviderOllama }

func (c *Ollama) Model() string { return c.model }

// Complete sends a non-streaming chat request and returns the reply message.
func (c *Ollama) Complete(ctx context.Context, system, user string) (string, error) {
	content, err := c.chat(ctx, system, user)
	if err != nil {
		return "", &Error{Provider: config.ProviderOllama, Model: c.model, Err: err}
	}
	return content, nil
}

func (c *Ollama) chat(ctx context.Context, system, user string) (string, error) {
	payload := ollamaChatRequest{
		Model: c.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream:  false,
		Options: ollamaOptions{Temperature: Temperature},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.host + "/api/chat"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call ollama at %s: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var result ollamaChatResponse
	decodeErr := json.Unmarshal(respBody, &result)

	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && result.Error != "" {
			return "", fmt.Errorf("ollama returned %d: %s", resp.StatusCode, result.Error)
		}
		return "", fmt.Errorf("ollama returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode response: %w (body: %s)", decodeErr, string(respBody))
	}
	if result.Error != "" {
		return "", fmt.Errorf("ollama error: %s", result.Error)
	}

	return result.Message.Content, nil
}
