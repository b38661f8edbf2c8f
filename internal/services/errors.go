package services

import "fmt"

// ValidationError is a user-facing problem with an upload payload. Handlers
// return its message verbatim with HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ProviderError is a non-2xx outcome from the completion provider. The
// captured body is for server-side diagnostics only and never reaches the
// client.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("openrouter api error: status %d", e.StatusCode)
}
