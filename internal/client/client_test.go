package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAISearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai-search", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "how do I loop in python", req["query"])

		json.NewEncoder(w).Encode(domain.AISearchPayload{
			Results: []domain.AISearchResult{
				{Path: "/docs/python/control-flow", Title: "Python Control Flow", Relevance: domain.RelevanceHigh},
			},
			AISummary: "Use a for loop.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	payload, err := c.AISearch(context.Background(), "how do I loop in python")
	require.NoError(t, err)
	require.Len(t, payload.Results, 1)
	assert.Equal(t, "Use a for loop.", payload.AISummary)
}

func TestAISearch_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized - invalid token"})
	}))
	defer srv.Close()

	c := New(srv.URL, "stale")
	_, err := c.AISearch(context.Background(), "how do I loop")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeAuthentication, domainErr.Code)
	assert.Equal(t, "Unauthorized - invalid token", domainErr.Message)
}

func TestAISearch_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]string{"error": "slow down"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.AISearch(context.Background(), "how do I loop")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeRateLimited, domainErr.Code)
}

func TestAISearch_ServerUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", "tok")
	_, err := c.AISearch(context.Background(), "how do I loop")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeNetwork, domainErr.Code)
}

func TestAISearch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json at all")
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.AISearch(context.Background(), "how do I loop")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeNetwork, domainErr.Code)
}

func TestChat_StreamsToWriter(t *testing.T) {
	stream := "data: {\"choices\":[{\"delta\":{\"content\":\"hey\"}}]}\n\ndata: [DONE]\n\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/doc-chat", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, stream)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	var buf bytes.Buffer
	err := c.Chat(context.Background(), []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: "hi"},
	}, &buf)
	require.NoError(t, err)
	assert.Equal(t, stream, buf.String())
}

func TestChat_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Messages are required"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	err := c.Chat(context.Background(), nil, io.Discard)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeValidation, domainErr.Code)
	assert.Equal(t, "Messages are required", domainErr.Message)
}
