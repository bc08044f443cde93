package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/learnhubhq/docsearch/internal/api"
	"github.com/learnhubhq/docsearch/internal/api/middleware"
	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/rs/zerolog"
)

// ChatStreamer requests a streamed completion and hands back the raw
// gateway response for relay.
type ChatStreamer interface {
	StreamChat(ctx context.Context, system string, messages []domain.ChatMessage) (*http.Response, error)
}

// ChatHandler serves POST /doc-chat.
type ChatHandler struct {
	gateway      ChatStreamer
	systemPrompt string
	log          zerolog.Logger
}

func NewChatHandler(gateway ChatStreamer, systemPrompt string, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		gateway:      gateway,
		systemPrompt: systemPrompt,
		log:          log,
	}
}

type ChatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// Chat relays a streamed completion for a running conversation. The
// upstream byte stream is passed through unmodified: no per-chunk
// transformation, ordering and framing preserved exactly.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if middleware.GetIdentity(r.Context()) == nil {
		api.Error(w, http.StatusUnauthorized, domain.ErrAuthRequired.Message)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, domain.ErrMessagesRequired.Message)
		return
	}
	if len(req.Messages) == 0 {
		api.Error(w, http.StatusBadRequest, domain.ErrMessagesRequired.Message)
		return
	}

	resp, err := h.gateway.StreamChat(r.Context(), h.systemPrompt, req.Messages)
	if err != nil {
		h.log.Error().Err(err).Msg("chat stream failed")
		api.HandleError(w, err)
		return
	}
	defer resp.Body.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	if _, err := io.Copy(&flushWriter{w: w, flusher: flusher}, resp.Body); err != nil {
		// Headers are already out; nothing to do but note the broken relay.
		h.log.Warn().Err(err).Msg("chat stream relay interrupted")
	}
}

// flushWriter flushes after every chunk so tokens reach the client as the
// gateway emits them.
type flushWriter struct {
	w       io.Writer
	flusher http.Flusher
}

func (f *flushWriter) Write(p []byte) (int, error) {
	n, err := f.w.Write(p)
	if f.flusher != nil {
		f.flusher.Flush()
	}
	return n, err
}
