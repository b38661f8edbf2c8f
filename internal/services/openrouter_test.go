package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usc-ai-assistant/internal/config"
	"usc-ai-assistant/internal/models"
)

func testPayload() *models.CompletionRequest {
	return &models.CompletionRequest{
		Model: "deepseek/deepseek-r1:free",
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: "system prompt"},
			{Role: models.RoleUser, Content: "user message"},
		},
		MaxTokens: models.MaxCompletionTokens,
	}
}

func newTestClient(url string) OpenRouterClient {
	return NewOpenRouterClient(config.OpenRouterConfig{
		APIKey:  "test-key",
		Model:   "deepseek/deepseek-r1:free",
		URL:     url,
		Timeout: 5 * time.Second,
	})
}

func TestCreateCompletionSuccess(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody models.CompletionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"USC's acceptance rate is 10%."}}]}`)
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).CreateCompletion(context.Background(), testPayload())
	require.NoError(t, err)

	assert.Equal(t, "USC's acceptance rate is 10%.", content)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "deepseek/deepseek-r1:free", gotBody.Model)
	assert.Equal(t, 1000, gotBody.MaxTokens)
	assert.Len(t, gotBody.Messages, 2)
}

func TestCreateCompletionProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"error":"model overloaded"}`)
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).CreateCompletion(context.Background(), testPayload())
	require.Error(t, err)
	assert.Empty(t, content)

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusServiceUnavailable, providerErr.StatusCode)
	assert.Contains(t, providerErr.Body, "model overloaded")
}

func TestCreateCompletionNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).CreateCompletion(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Empty(t, content, "missing content is the caller's fallback, not an error")
}

func TestCreateCompletionMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateCompletion(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode completion response")
}

func TestCreateCompletionMissingAPIKey(t *testing.T) {
	client := NewOpenRouterClient(config.OpenRouterConfig{
		URL:     "http://127.0.0.1:1",
		Timeout: time.Second,
	})

	_, err := client.CreateCompletion(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is empty")
}
