package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"usc-ai-assistant/internal/config"
	"usc-ai-assistant/internal/models"
)

// OpenRouterClient sends completion requests to the OpenRouter
// chat-completions endpoint.
type OpenRouterClient interface {
	CreateCompletion(ctx context.Context, payload *models.CompletionRequest) (string, error)
}

type openRouterClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

func NewOpenRouterClient(cfg config.OpenRouterConfig) OpenRouterClient {
	return &openRouterClient{
		apiKey: cfg.APIKey,
		url:    cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// CreateCompletion returns the first choice's message content. An empty
// string with a nil error means the provider answered without content; the
// caller picks the fallback text.
func (c *openRouterClient) CreateCompletion(ctx context.Context, payload *models.CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("openrouter api key is empty")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call openrouter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(resp.Body)
		return "", &ProviderError{StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	var result models.CompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", nil
	}
	return result.Choices[0].Message.Content, nil
}
