package services

import (
	"context"
	"errors"

	"usc-ai-assistant/internal/logger"
	"usc-ai-assistant/internal/models"
)

const (
	fallbackEmptyResponse = "Error generating a response."
	fallbackChatFailure   = "Error generating USC response"
	webSearchDisclaimer   = "\n\nNote: This response was generated with web search ans is less reliable"
)

// ChatService answers student questions about USC through the completion
// provider.
type ChatService interface {
	Answer(ctx context.Context, question string, profile *models.StudentProfile, useWebSearch bool) string
}

type chatService struct {
	client        OpenRouterClient
	promptBuilder *PromptBuilder
	model         string
}

func NewChatService(client OpenRouterClient, model string) ChatService {
	return &chatService{
		client:        client,
		promptBuilder: NewPromptBuilder(),
		model:         model,
	}
}

// Answer never fails from the caller's perspective: any provider or
// transport problem is logged server-side and collapsed into a fixed
// fallback string, so the student always gets some text back.
func (s *chatService) Answer(ctx context.Context, question string, profile *models.StudentProfile, useWebSearch bool) string {
	systemPrompt := s.promptBuilder.BuildSystemPrompt(profile, useWebSearch)
	userMessage := s.promptBuilder.BuildUserMessage(question, profile, useWebSearch)
	payload := s.buildPayload(systemPrompt, userMessage, profile, useWebSearch)

	content, err := s.client.CreateCompletion(ctx, payload)
	if err != nil {
		logProviderFailure(ctx, err)
		return fallbackChatFailure
	}

	if content == "" {
		content = fallbackEmptyResponse
	}
	if useWebSearch {
		content += webSearchDisclaimer
	}
	return content
}

// buildPayload assembles the outbound request: two messages (system, user),
// the file-parser plugin plus a two-part user content when a resume rides
// along, and the web plugin when search is enabled. The plugins key is only
// attached when the list is non-empty.
func (s *chatService) buildPayload(systemPrompt, userMessage string, profile *models.StudentProfile, useWebSearch bool) *models.CompletionRequest {
	payload := &models.CompletionRequest{
		Model: s.model,
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: systemPrompt},
			{Role: models.RoleUser, Content: userMessage},
		},
		MaxTokens: models.MaxCompletionTokens,
	}

	if profile.HasResume() {
		payload.Plugins = append(payload.Plugins, models.Plugin{
			ID:  models.PluginFileParser,
			PDF: &models.PDFConfig{Engine: models.PDFEngineText},
		})

		filename := profile.Resume.Filename
		if filename == "" {
			filename = "resume.pdf"
		}
		payload.Messages[1].Content = []models.ContentPart{
			{Type: "text", Text: userMessage},
			{Type: "file", File: &models.FileData{
				Filename: filename,
				FileData: "data:application/pdf;base64," + profile.Resume.Base64,
			}},
		}
	}

	if useWebSearch {
		payload.Plugins = append(payload.Plugins, models.Plugin{ID: models.PluginWebSearch})
	}

	return payload
}

func logProviderFailure(ctx context.Context, err error) {
	event := logger.Ctx(ctx).Error().Err(err)
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		event = event.Int("status", providerErr.StatusCode).Str("error_body", providerErr.Body)
	}
	event.Msg("Error generating USC response")
}
