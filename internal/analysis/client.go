package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Analyzer returns a security verdict for a file's content.
type Analyzer interface {
	Analyze(ctx context.Context, content, fileType string) (string, error)
}

// OpenAIConfig configures an OpenAIClient.
type OpenAIConfig struct {
	// APIKey is sent as a bearer token. It may be empty; the error then
	// surfaces on the first Analyze call.
	APIKey string

	// BaseURL is the API root, e.g. "https://api.openai.com/v1".
	BaseURL string

	// Model is the chat completion model name.
	Model string

	// Timeout bounds a single call.
	Timeout time.Duration
}

// OpenAIClient implements Analyzer against the chat completions endpoint.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures an OpenAIClient.
type ClientOption func(*OpenAIClient)

// WithHTTPClient replaces the HTTP client. The config timeout is ignored.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *OpenAIClient) {
		c.httpClient = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *OpenAIClient) {
		c.logger = logger
	}
}

// NewOpenAIClient creates a client from cfg.
func NewOpenAIClient(cfg OpenAIConfig, opts ...ClientOption) *OpenAIClient {
	c := &OpenAIClient{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model name used for analysis.
func (c *OpenAIClient) Model() string {
	return c.model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Analyze sends content with the fixed system prompt and returns the verdict.
func (c *OpenAIClient) Analyze(ctx context.Context, content, fileType string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: UserPrompt(fileType, content)},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	c.logger.Debug("analysis request", "model", c.model, "file_type", fileType, "content_len", len(content))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s: %s", ErrServiceStatus, resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrServiceStatus, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	verdict := parsed.Choices[0].Message.Content
	c.logger.Debug("analysis response", "model", c.model, "elapsed", time.Since(start), "verdict_len", len(verdict))
	return verdict, nil
}
