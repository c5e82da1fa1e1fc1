package models

// Message is a single chat message in the OpenAI-compatible wire format
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the body POSTed to /v1/chat/completions.
// Stream is always serialized; the server defaults to streaming when
// the flag is absent.
type ChatCompletionRequest struct {
	Model         string    `json:"model,omitempty"`
	Messages      []Message `json:"messages"`
	Temperature   *float64  `json:"temperature,omitempty"`
	MaxTokens     *int      `json:"max_tokens,omitempty"`
	Stream        bool      `json:"stream"`
	TopP          *float64  `json:"top_p,omitempty"`
	TopK          *int      `json:"top_k,omitempty"`
	RepeatPenalty *float64  `json:"repeat_penalty,omitempty"`
}

// ChatCompletionResponse is the non-streaming response envelope
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one response candidate
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// Usage reports token accounting for a completion
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status        string `json:"status"`
	ModelLoaded   bool   `json:"model_loaded"`
	Version       string `json:"version"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
}

// ModelInfo describes one entry of GET /models
type ModelInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	ContextWindow int    `json:"context_window,omitempty"`
	Default       bool   `json:"default,omitempty"`
}

// ModelsResponse is the body of GET /models
type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// VersionResponse is the body of GET /version
type VersionResponse struct {
	Version  string `json:"version"`
	API      string `json:"api"`
	ModelAPI string `json:"model_api"`
}
