package services

import (
	"strconv"
	"strings"
	"time"

	"usc-ai-assistant/internal/logger"
	"usc-ai-assistant/internal/models"
)

type ProfileService interface {
	CreateProfile(req *models.UploadProfileRequest) (*models.StudentProfile, error)
}

type profileService struct{}

func NewProfileService() ProfileService {
	return &profileService{}
}

// CreateProfile validates the upload and returns a normalized profile. The
// profile only exists for this request; the id is a best-effort timestamp
// string, not a primary key, and may collide under concurrent uploads in the
// same millisecond.
func (s *profileService) CreateProfile(req *models.UploadProfileRequest) (*models.StudentProfile, error) {
	if req.Resume != nil {
		if req.Resume.Filename == "" || req.Resume.Base64 == "" {
			return nil, &ValidationError{Message: "Invalid resume data"}
		}
		if !strings.HasSuffix(strings.ToLower(req.Resume.Filename), ".pdf") {
			return nil, &ValidationError{Message: "Only PDF files are allowed for resume"}
		}
	}

	now := time.Now()
	profile := &models.StudentProfile{
		ID:               strconv.FormatInt(now.UnixMilli(), 10),
		LinkedinURL:      req.LinkedinURL,
		Resume:           req.Resume,
		CurrentEducation: req.CurrentEducation,
		Interests:        req.Interests,
		UploadedAt:       models.ISOTimestamp(now),
	}

	// Redacted operational log: never the base64 payload itself.
	event := logger.Info().
		Str("profile_id", profile.ID).
		Str("uploaded_at", profile.UploadedAt)
	if profile.Resume != nil {
		event = event.
			Str("resume", "Base64 PDF data").
			Str("resume_filename", profile.Resume.Filename).
			Int64("resume_size", profile.Resume.Size)
	}
	event.Msg("Profile uploaded")

	return profile, nil
}
