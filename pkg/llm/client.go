// Package llm is the OpenRouter client. Chat completions go through the
// provider's OpenAI-compatible endpoint via the official openai-go SDK;
// model listing uses the provider's native /models endpoint, whose pricing
// fields are not part of the OpenAI schema.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nimbuscode/nimbuscode/pkg/config"
	"github.com/nimbuscode/nimbuscode/pkg/logger"
)

const (
	// DefaultBaseURL is the OpenRouter API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// referer identifies the app to OpenRouter, which requires the header.
	referer = "https://github.com/nimbuscode/nimbuscode"

	defaultTimeout = 60 * time.Second

	// maxResponseSize caps the /models response body.
	maxResponseSize = 10 * 1024 * 1024
)

// ErrEmptyChoices is returned when a completion response carries no choices.
var ErrEmptyChoices = errors.New("empty completion choices")

// Client talks to OpenRouter with a fixed bearer key.
type Client struct {
	baseURL string
	apiKey  string
	api     openai.Client
	httpc   *http.Client
	log     logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, used by tests to point at a local
// server.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client used for the /models endpoint.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a client with the given bearer key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	// Nothing in this client is retried; failures surface once.
	c.api = openai.NewClient(
		option.WithAPIKey(c.apiKey),
		option.WithBaseURL(c.baseURL),
		option.WithHeader("HTTP-Referer", referer),
		option.WithMaxRetries(0),
	)
	return c
}

// Complete sends one chat completion request and returns the reply text.
// The optional system prompt is placed first, followed by the user prompt.
// Model, max_tokens, and temperature pass through from settings unmodified;
// out-of-range values are the remote service's problem to reject.
func (c *Client) Complete(ctx context.Context, userPrompt, systemPrompt string, settings config.Settings) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	c.log.Debug("chat completion request", map[string]any{
		"model":      settings.Model,
		"messages":   len(messages),
		"max_tokens": settings.MaxTokens,
	})

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       settings.Model,
		Messages:    messages,
		MaxTokens:   openai.Int(int64(settings.MaxTokens)),
		Temperature: openai.Float(settings.Temperature),
	})
	if err != nil {
		c.log.Debug("chat completion failed", map[string]string{"error": err.Error()})
		return "", fmt.Errorf("querying OpenRouter API: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyChoices
	}

	c.log.Debug("chat completion received", map[string]any{
		"choices":       len(completion.Choices),
		"finish_reason": completion.Choices[0].FinishReason,
	})
	return completion.Choices[0].Message.Content, nil
}

// ModelInfo describes one model entry from the listing endpoint.
type ModelInfo struct {
	ID            string
	Name          string
	ContextLength int // 0 when the provider omits it
	Description   string
}

// modelsResponse mirrors OpenRouter's /models payload. Pricing values are
// decimal strings, e.g. "0" or "0.000002".
type modelsResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		ContextLength int    `json:"context_length"`
		Description   string `json:"description"`
		Pricing       struct {
			Prompt     string `json:"prompt"`
			Completion string `json:"completion"`
		} `json:"pricing"`
	} `json:"data"`
}

// ListFreeModels fetches the provider's model list and returns the entries
// whose prompt and completion prices are both exactly zero, in the order the
// provider listed them. An empty result is a normal outcome.
func (c *Client) ListFreeModels(ctx context.Context) ([]ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("creating models request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching models: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("reading models response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching models: status %d: %s", resp.StatusCode, string(body))
	}

	var listing modelsResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("parsing models response: %w", err)
	}

	free := make([]ModelInfo, 0, len(listing.Data))
	for _, m := range listing.Data {
		if !isZeroPrice(m.Pricing.Prompt) || !isZeroPrice(m.Pricing.Completion) {
			continue
		}
		free = append(free, ModelInfo{
			ID:            m.ID,
			Name:          m.Name,
			ContextLength: m.ContextLength,
			Description:   m.Description,
		})
	}

	c.log.Debug("models listed", map[string]int{"total": len(listing.Data), "free": len(free)})
	return free, nil
}

// isZeroPrice reports whether a pricing string parses to exactly zero.
// Unparseable values are treated as priced.
func isZeroPrice(price string) bool {
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return false
	}
	return v == 0
}
