package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/learnhubhq/docsearch/internal/api"
	"github.com/learnhubhq/docsearch/internal/api/middleware"
	"github.com/learnhubhq/docsearch/internal/domain"
	"github.com/learnhubhq/docsearch/internal/llm"
	"github.com/rs/zerolog"
)

// Gateway answers one search query against a knowledge base.
type Gateway interface {
	SearchCompletion(ctx context.Context, knowledgeBase, query string) (*domain.AISearchPayload, error)
}

// SearchLogRecorder records completed searches for later evaluation. May be
// nil when no database is configured.
type SearchLogRecorder interface {
	Create(ctx context.Context, entry domain.SearchLogEntry) (string, error)
}

// SearchHandler serves POST /ai-search.
type SearchHandler struct {
	gateway       Gateway
	knowledgeBase string
	logRepo       SearchLogRecorder
	log           zerolog.Logger
}

func NewSearchHandler(gateway Gateway, knowledgeBase string, logRepo SearchLogRecorder, log zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		gateway:       gateway,
		knowledgeBase: knowledgeBase,
		logRepo:       logRepo,
		log:           log,
	}
}

type SearchRequest struct {
	Query string `json:"query"`
}

// Search answers a natural-language query with AI-ranked documentation
// results. The response always carries a results array and a summary; a
// gateway reply that cannot be parsed degrades to an empty result set
// rather than an error.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if middleware.GetIdentity(r.Context()) == nil {
		api.Error(w, http.StatusUnauthorized, domain.ErrAuthRequired.Message)
		return
	}

	start := time.Now()
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, domain.ErrQueryRequired.Message)
		return
	}
	if req.Query == "" {
		api.Error(w, http.StatusBadRequest, domain.ErrQueryRequired.Message)
		return
	}

	payload, err := h.gateway.SearchCompletion(r.Context(), h.knowledgeBase, req.Query)
	if err != nil {
		if errors.Is(err, llm.ErrMalformedPayload) {
			h.log.Warn().Err(err).Msg("unparseable gateway payload, degrading to empty results")
			payload = domain.DegradedPayload()
		} else {
			h.writeError(w, err)
			return
		}
	}

	if payload.Results == nil {
		payload.Results = []domain.AISearchResult{}
	}

	h.recordSearch(req.Query, payload, time.Since(start))
	api.JSON(w, http.StatusOK, payload)
}

// writeError maps domain errors onto the wire. Upstream failures carry an
// empty results array alongside the error so clients can render the
// fallback without special-casing the body shape.
func (h *SearchHandler) writeError(w http.ResponseWriter, err error) {
	status := api.DomainErrorToHTTP(err)
	message := api.ErrorMessage(err)

	h.log.Error().Err(err).Int("status", status).Msg("ai search failed")

	if status >= http.StatusInternalServerError {
		api.JSON(w, status, map[string]any{
			"error":     message,
			"results":   []domain.AISearchResult{},
			"aiSummary": "",
		})
		return
	}
	api.Error(w, status, message)
}

// recordSearch logs the search asynchronously; logging failures never
// affect the response.
func (h *SearchHandler) recordSearch(query string, payload *domain.AISearchPayload, elapsed time.Duration) {
	if h.logRepo == nil {
		return
	}

	paths := make([]string, 0, len(payload.Results))
	for _, result := range payload.Results {
		paths = append(paths, result.Path)
	}
	entry := domain.SearchLogEntry{
		Query:       query,
		ResultPaths: paths,
		DurationMs:  int(elapsed.Milliseconds()),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := h.logRepo.Create(ctx, entry); err != nil {
			h.log.Warn().Err(err).Msg("failed to record search log")
		}
	}()
}
