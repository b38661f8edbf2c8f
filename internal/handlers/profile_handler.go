package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"usc-ai-assistant/internal/logger"
	"usc-ai-assistant/internal/models"
	"usc-ai-assistant/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// HandleUploadProfile handles POST /api/upload-profile
func (h *ProfileHandler) HandleUploadProfile(c *fiber.Ctx) error {
	var req models.UploadProfileRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ProfileUploadResponse{
			Success: false,
			Message: "Invalid request payload",
		})
	}

	profile, err := h.profileService.CreateProfile(&req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ProfileUploadResponse{
				Success: false,
				Message: validationErr.Message,
			})
		}

		logger.Error().Err(err).Msg("Upload error")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ProfileUploadResponse{
			Success: false,
			Message: "Failed to upload profile",
		})
	}

	return c.JSON(models.ProfileUploadResponse{
		Success: true,
		Message: "Profile uploaded successfully",
		Profile: profile,
	})
}
