package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/learnhubhq/docsearch/internal/api/handlers"
	"github.com/learnhubhq/docsearch/internal/auth"
	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{}

func (stubValidator) ValidateToken(ctx context.Context, token string) (*auth.Identity, error) {
	if token != "good-token" {
		return nil, domain.ErrInvalidToken
	}
	return &auth.Identity{UserID: "user-1"}, nil
}

type stubGateway struct{}

func (stubGateway) SearchCompletion(ctx context.Context, knowledgeBase, query string) (*domain.AISearchPayload, error) {
	return &domain.AISearchPayload{
		Results:   []domain.AISearchResult{},
		AISummary: "nothing to see",
	}, nil
}

func (stubGateway) StreamChat(ctx context.Context, system string, messages []domain.ChatMessage) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("data: [DONE]\n\n")),
	}, nil
}

func newTestRouter() http.Handler {
	log := zerolog.Nop()
	return NewRouter(RouterConfig{
		Validator:     stubValidator{},
		SearchHandler: handlers.NewSearchHandler(stubGateway{}, "kb", nil, log),
		ChatHandler:   handlers.NewChatHandler(stubGateway{}, "prompt", log),
		Logger:        log,
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestRouter_PreflightShortCircuits(t *testing.T) {
	router := newTestRouter()

	// Preflight must succeed without a token; the browser sends it before
	// any Authorization header exists.
	req := httptest.NewRequest(http.MethodOptions, "/ai-search", nil)
	req.Header.Set("Origin", "https://learnhub.io")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_SearchRequiresToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/ai-search",
		bytes.NewBufferString(`{"query": "how do I loop"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrAuthRequired.Message)
}

func TestRouter_SearchWithToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/ai-search",
		bytes.NewBufferString(`{"query": "how do I loop"}`))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload domain.AISearchPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "nothing to see", payload.AISummary)
}

func TestRouter_ChatWithToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/doc-chat",
		bytes.NewBufferString(`{"messages": [{"role": "user", "content": "hi"}]}`))
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "data: [DONE]\n\n", rec.Body.String())
}

func TestRouter_RejectsBadToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/doc-chat",
		bytes.NewBufferString(`{"messages": [{"role": "user", "content": "hi"}]}`))
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.ErrInvalidToken.Message)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
