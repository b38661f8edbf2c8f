package models

// APIResponse is the minimal success/message envelope shared by all
// endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UploadProfileRequest is the body of POST /api/upload-profile. Every field
// is optional.
type UploadProfileRequest struct {
	LinkedinURL      *string     `json:"linkedinUrl"`
	CurrentEducation *string     `json:"currentEducation"`
	Interests        *string     `json:"interests"`
	Resume           *ResumeFile `json:"resume"`
}

type ProfileUploadResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Profile *StudentProfile `json:"profile,omitempty"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message      string          `json:"message"`
	UserProfile  *StudentProfile `json:"userProfile"`
	UseWebSearch bool            `json:"useWebSearch"`
}

type ChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Message   string `json:"message,omitempty"`
}
