// Package client is the Go API client for the search endpoints. The
// coordinator uses it for AI searches; the CLI also streams chat through
// it. Transport failures surface as NETWORK_ERROR domain errors so callers
// can fall back to local results without inspecting wire details.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/learnhubhq/docsearch/internal/domain"
)

const defaultTimeout = 35 * time.Second

// Client talks to a docsearch server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client for the given base URL, authenticating with the
// bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type aiSearchRequest struct {
	Query string `json:"query"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// AISearch runs one AI search. It implements coordinator.SearchClient.
func (c *Client) AISearch(ctx context.Context, query string) (*domain.AISearchPayload, error) {
	resp, err := c.post(ctx, "/ai-search", aiSearchRequest{Query: query})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var payload domain.AISearchPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeNetwork,
			"failed to parse search response", err)
	}
	return &payload, nil
}

type chatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// Chat streams a documentation chat completion into w, relaying the
// server's event stream as it arrives.
func (c *Client) Chat(ctx context.Context, messages []domain.ChatMessage, w io.Writer) error {
	resp, err := c.post(ctx, "/doc-chat", chatRequest{Messages: messages})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return domain.NewDomainErrorWithCause(domain.ErrCodeNetwork,
			"chat stream interrupted", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeNetwork,
			"failed to marshal request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeNetwork,
			"failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeNetwork,
			"request failed", err)
	}
	return resp, nil
}

// statusError converts a non-2xx response to the matching domain error,
// carrying the server's error message when the body yields one.
func (c *Client) statusError(resp *http.Response) error {
	var body errorResponse
	message := fmt.Sprintf("server returned status %d", resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.NewDomainError(domain.ErrCodeAuthentication, message)
	case http.StatusPaymentRequired:
		return domain.NewDomainError(domain.ErrCodeQuotaExhausted, message)
	case http.StatusTooManyRequests:
		return domain.NewDomainError(domain.ErrCodeRateLimited, message)
	case http.StatusBadRequest:
		return domain.NewDomainError(domain.ErrCodeValidation, message)
	default:
		return domain.NewDomainError(domain.ErrCodeUpstream, message)
	}
}
