package models

// Wire types for the OpenRouter chat-completions endpoint.

const (
	RoleSystem = "system"
	RoleUser   = "user"

	PluginFileParser = "file-parser"
	PluginWebSearch  = "web"
	PDFEngineText    = "pdf-text"

	// MaxCompletionTokens caps the provider's output on every request.
	MaxCompletionTokens = 1000
)

type CompletionRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
	Plugins   []Plugin  `json:"plugins,omitempty"`
}

// Message content is either a plain string or, when a file rides along,
// a []ContentPart. Construction happens in one place (the payload builder)
// so no custom marshaller is needed for the union.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type ContentPart struct {
	Type string    `json:"type"`
	Text string    `json:"text,omitempty"`
	File *FileData `json:"file,omitempty"`
}

// FileData carries an attachment as a data URI in FileData.
type FileData struct {
	Filename string `json:"filename"`
	FileData string `json:"file_data"`
}

// Plugin is a provider-side capability: "file-parser" with a PDF engine, or
// "web" with no parameters.
type Plugin struct {
	ID  string     `json:"id"`
	PDF *PDFConfig `json:"pdf,omitempty"`
}

type PDFConfig struct {
	Engine string `json:"engine"`
}

type CompletionResponse struct {
	Choices []CompletionChoice `json:"choices"`
}

type CompletionChoice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}
