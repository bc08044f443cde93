package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/learnhubhq/docsearch/internal/domain"
)

// ErrMalformedPayload marks gateway output that could not be parsed as a
// search payload. Callers degrade to domain.DegradedPayload instead of
// failing the request.
var ErrMalformedPayload = errors.New("malformed gateway payload")

// StripFences removes a markdown code fence wrapping, if present. Models
// occasionally wrap their JSON in ```json ... ``` despite instructions.
func StripFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}

	t = strings.TrimPrefix(t, "```")
	if idx := strings.Index(t, "\n"); idx >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		t = t[idx+1:]
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

type rawPayload struct {
	Results   []rawResult `json:"results"`
	AISummary string      `json:"aiSummary"`
}

type rawResult struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Relevance string `json:"relevance"`
	Snippet   string `json:"snippet"`
}

// ParseSearchPayload parses gateway text into a validated search payload.
// The results field must be present (an empty array is fine); each result
// must carry a path, a title and a known relevance tier. A missing tier
// defaults to medium. Any violation returns ErrMalformedPayload.
func ParseSearchPayload(text string) (*domain.AISearchPayload, error) {
	cleaned := StripFences(text)

	var raw rawPayload
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if raw.Results == nil {
		return nil, fmt.Errorf("%w: missing results array", ErrMalformedPayload)
	}

	results := make([]domain.AISearchResult, 0, len(raw.Results))
	for i, r := range raw.Results {
		tier := domain.RelevanceTier(strings.ToLower(strings.TrimSpace(r.Relevance)))
		if tier == "" {
			tier = domain.RelevanceMedium
		}
		result := domain.AISearchResult{
			Path:      r.Path,
			Title:     r.Title,
			Category:  r.Category,
			Relevance: tier,
			Snippet:   r.Snippet,
		}
		if err := result.Validate(); err != nil {
			return nil, fmt.Errorf("%w: result %d: %v", ErrMalformedPayload, i, err)
		}
		results = append(results, result)
	}

	return &domain.AISearchPayload{Results: results, AISummary: raw.AISummary}, nil
}
