// Package api implements the HTTP client for the ChatSafe local server.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/everettbu/chatsafe/internal/errors"
	"github.com/everettbu/chatsafe/internal/models"
)

// Client talks to the ChatSafe server. The zero http.Client carries no
// timeout: a slow server blocks the caller until the transport errors,
// which is the intended single-turn behavior.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithBaseURL overrides the server address. Used by tests; the CLI
// always talks to the fixed local endpoint.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithModel sets the model id sent with chat requests. Empty means the
// server picks its configured default.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// NewClient creates a client for the local ChatSafe server
func NewClient(opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{},
		baseURL:    models.BaseURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Reply is a decoded chat completion
type Reply struct {
	Content      string
	Model        string
	FinishReason string
	Usage        models.Usage
}

// stripRoleLabels removes echoed conversation formatting before sending,
// so the model never sees its own transcript prefixes.
func stripRoleLabels(text string) string {
	text = strings.ReplaceAll(text, "AI: ", "")
	return strings.ReplaceAll(text, "You: ", "")
}

// ChatCompletion sends one user message and returns the decoded reply.
// Errors are typed per the taxonomy in internal/errors so callers can
// pattern-match instead of inspecting text.
func (c *Client) ChatCompletion(text string) (*Reply, error) {
	endpoint := c.baseURL + models.PathChatCompletions

	reqBody := models.ChatCompletionRequest{
		Model: c.model,
		Messages: []models.Message{
			{Role: models.RoleUser, Content: stripRoleLabels(text)},
		},
		Stream: false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewConnectionError(endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apierrors.NewAPIError(resp.StatusCode, endpoint, "chat completion failed")
	}

	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response body is not valid JSON", "")
	}

	reply := &Reply{
		Model:        gjson.GetBytes(body, "model").String(),
		FinishReason: gjson.GetBytes(body, "choices.0.finish_reason").String(),
		Usage: models.Usage{
			PromptTokens:     int(gjson.GetBytes(body, "usage.prompt_tokens").Int()),
			CompletionTokens: int(gjson.GetBytes(body, "usage.completion_tokens").Int()),
			TotalTokens:      int(gjson.GetBytes(body, "usage.total_tokens").Int()),
		},
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		// Missing path on a 200 is indistinguishable from an empty
		// reply at the wire level; surface the documented fallback.
		reply.Content = models.NoResponseFallback
		return reply, nil
	}
	reply.Content = content.String()

	return reply, nil
}

// SendMessage sends one message and maps every outcome to the string
// shown to the user. The first matching rule wins.
func (c *Client) SendMessage(text string) string {
	reply, err := c.ChatCompletion(text)
	if err != nil {
		switch {
		case apierrors.IsConnectionError(err):
			return "Error: Failed to connect to ChatSafe server. Is it running?"
		case apierrors.GetHTTPStatus(err) > 0:
			return fmt.Sprintf("Error: HTTP %d", apierrors.GetHTTPStatus(err))
		case apierrors.IsParseError(err):
			return "Error: Invalid response from server"
		default:
			return fmt.Sprintf("Error: %v", err)
		}
	}
	return reply.Content
}
