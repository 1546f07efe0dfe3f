// Package azopenai wraps the OpenAI SDK for chat completions against an
// Azure OpenAI deployment, exposing the narrow surface the harness needs.
package azopenai

import (
	"context"
	"net/http"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/rotisserie/eris"
)

// Client defines the completion operation used by the comparison harness.
type Client interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (*ChatCompletionResponse, error)
}

// ChatRequest is a single chat-style completion request. System and the
// question portion of User stay identical across the two comparison runs;
// only the embedded payload block differs.
type ChatRequest struct {
	System      string
	User        string
	Temperature float64
}

// ChatCompletionResponse carries the generated text and usage counters.
type ChatCompletionResponse struct {
	ID    string
	Model string
	Text  string
	Usage Usage
}

// Usage tracks token consumption for one request.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Consistent reports whether the service honored the
// total == prompt + completion invariant.
func (u Usage) Consistent() bool {
	return u.TotalTokens == u.PromptTokens+u.CompletionTokens
}

// Config holds the connection settings for one Azure OpenAI deployment.
// Constructed once at startup, validated eagerly, never mutated.
type Config struct {
	Endpoint   string
	APIKey     string
	APIVersion string
	Deployment string
}

// Option configures the client.
type Option func(*sdkClient)

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *sdkClient) {
		c.http = hc
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *sdkClient) {
		c.timeout = d
	}
}

// sdkClient implements Client using the official openai-go SDK.
type sdkClient struct {
	client     openai.Client
	deployment string
	http       *http.Client
	timeout    time.Duration
}

// NewClient creates a completion client for the configured deployment.
// Each call makes a single attempt: transient failures surface as typed
// errors rather than being retried.
func NewClient(cfg Config, opts ...Option) Client {
	c := &sdkClient{
		deployment: cfg.Deployment,
		timeout:    60 * time.Second,
	}
	for _, o := range opts {
		o(c)
	}
	if c.http == nil {
		c.http = &http.Client{
			Timeout: c.timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	c.client = openai.NewClient(
		azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
		azure.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(c.http),
		option.WithMaxRetries(0),
	)

	return c
}

func (c *sdkClient) ChatCompletion(ctx context.Context, req ChatRequest) (*ChatCompletionResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.deployment),
		Temperature: openai.Float(req.Temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, eris.New("azopenai: response contained no choices")
	}

	return &ChatCompletionResponse{
		ID:    resp.ID,
		Model: resp.Model,
		Text:  resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
