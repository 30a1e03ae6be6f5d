package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/starford/ansuz/internal/apperr"
)

const (
	// DefaultModel is used when the config does not name one.
	DefaultModel = "gpt-4o-mini"

	// DefaultMaxTokens bounds the summary length.
	DefaultMaxTokens = 1024

	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 30 * time.Second

	systemPrompt = "You summarize a user's personal notes. " +
		"Produce a short, plain-text summary of the main points across all notes. " +
		"Do not add pleasantries or commentary; return only the summary."
)

// ClientConfig configures the OpenAI-compatible summarization client.
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client implements Summarizer against any OpenAI-compatible chat endpoint.
type Client struct {
	api       openai.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// NewClient creates a summarization client from the given config.
func NewClient(cfg ClientConfig) *Client {
	opts := []option.RequestOption{}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	if base := strings.TrimRight(cfg.BaseURL, "/"); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		api:       openai.NewClient(opts...),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

// Summarize sends the corpus to the provider and returns the summary text.
// The call is bounded by the configured timeout.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(c.model),
		MaxTokens: openai.Int(c.maxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarizer: completion request: %w: %w", apperr.ErrSummarizerUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarizer: empty response: %w", apperr.ErrSummarizerUnavailable)
	}
	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("summarizer: empty summary: %w", apperr.ErrSummarizerUnavailable)
	}
	return summary, nil
}

var _ Summarizer = (*Client)(nil)
