package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"usc-ai-assistant/internal/logger"
	"usc-ai-assistant/internal/models"
	"usc-ai-assistant/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// HandleChat handles POST /api/chat. Provider failures do not surface here:
// the service folds them into fallback text, so a parsed request always gets
// a 200 with success true.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ChatResponse{
			Success: false,
			Message: "Failed to process chat message",
		})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ChatResponse{
			Success: false,
			Message: "Message is required",
		})
	}

	// Correlation id for server-side diagnostics; carried to the service via
	// the context logger.
	reqLogger := logger.Logger.With().Str("request_id", uuid.NewString()).Logger()
	ctx := reqLogger.WithContext(c.UserContext())

	response := h.chatService.Answer(ctx, req.Message, req.UserProfile, req.UseWebSearch)

	return c.JSON(models.ChatResponse{
		Success:   true,
		Response:  response,
		Timestamp: models.ISOTimestamp(time.Now()),
	})
}
