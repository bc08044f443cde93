// Package llm talks to the external LLM gateway: a single chat-completion
// call for AI search, and a streamed completion for documentation chat. The
// gateway is an opaque, rate-limited upstream; its failures map onto the
// domain error taxonomy here and nowhere else.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is used when no gateway model is configured.
	DefaultModel = openai.GPT4oMini
	// DefaultTimeout bounds a single gateway call. The gateway has its own
	// timeout behavior but we never rely on it.
	DefaultTimeout = 30 * time.Second

	defaultBaseURL = "https://api.openai.com/v1"
)

// Config holds gateway connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration

	// HTTPClient overrides the transport, used by tests.
	HTTPClient *http.Client
}

// Client is the LLM gateway client.
type Client struct {
	api     *openai.Client
	stream  *http.Client
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

// NewClient creates a gateway client. Zero config values fall back to
// defaults.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	stream := newStreamClient(cfg)
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL
	apiCfg.HTTPClient = cfg.HTTPClient

	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		stream:  stream,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     log,
	}
}

// newStreamClient builds the client used for streamed completions. The
// completion client's Timeout covers reading the response body, which would
// cut a long completion mid-relay; streaming bounds only the pre-stream
// phase via ResponseHeaderTimeout and lets the body run as long as the
// gateway keeps emitting.
func newStreamClient(cfg Config) *http.Client {
	if cfg.HTTPClient != nil {
		return &http.Client{Transport: cfg.HTTPClient.Transport}
	}
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Client{}
	}
	t := transport.Clone()
	t.ResponseHeaderTimeout = cfg.Timeout
	return &http.Client{Transport: t}
}

// SearchCompletion sends the knowledge base plus the user query as one chat
// completion and parses the reply into a search payload. Parse failures are
// reported as ErrMalformedPayload so the caller can degrade gracefully;
// gateway failures come back as domain errors.
func (c *Client) SearchCompletion(ctx context.Context, knowledgeBase, query string) (*domain.AISearchPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SearchPrompt(knowledgeBase)},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return nil, c.mapError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeUpstream,
			domain.ErrUpstreamFailure.Message, errors.New("gateway returned no choices"))
	}

	return ParseSearchPayload(resp.Choices[0].Message.Content)
}

type streamRequest struct {
	Model    string          `json:"model"`
	Stream   bool            `json:"stream"`
	Messages []streamMessage `json:"messages"`
}

type streamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StreamChat requests a streamed completion with the system instruction
// prepended and returns the raw gateway response for pass-through relay.
// The gateway's event-stream framing is not touched, so the relay preserves
// ordering and chunk boundaries exactly; the caller owns closing the body.
func (c *Client) StreamChat(ctx context.Context, system string, messages []domain.ChatMessage) (*http.Response, error) {
	req := streamRequest{
		Model:    c.model,
		Stream:   true,
		Messages: make([]streamMessage, 0, len(messages)+1),
	}
	req.Messages = append(req.Messages, streamMessage{
		Role:    string(domain.ChatRoleSystem),
		Content: system,
	})
	for _, m := range messages {
		req.Messages = append(req.Messages, streamMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeUpstream,
			domain.ErrUpstreamFailure.Message, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeUpstream,
			domain.ErrUpstreamFailure.Message, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.stream.Do(httpReq)
	if err != nil {
		return nil, c.mapError(err)
	}

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, c.mapStatus(resp.StatusCode, string(detail))
	}

	return resp, nil
}

// mapError converts transport and API errors into domain errors.
func (c *Client) mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return c.mapStatus(apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return c.mapStatus(reqErr.HTTPStatusCode, reqErr.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstream,
			domain.ErrUpstreamTimeout.Message, err)
	}
	return domain.NewDomainErrorWithCause(domain.ErrCodeUpstream,
		domain.ErrUpstreamFailure.Message, err)
}

// mapStatus maps a gateway HTTP status onto the domain taxonomy: 429 and
// 402 are relayed with user-facing messages, everything else is an
// upstream failure.
func (c *Client) mapStatus(status int, detail string) error {
	c.log.Warn().Int("status", status).Str("detail", detail).Msg("gateway error")

	switch status {
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusPaymentRequired:
		return domain.ErrQuotaExhausted
	default:
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstream,
			domain.ErrUpstreamFailure.Message,
			fmt.Errorf("gateway returned status %d", status))
	}
}
