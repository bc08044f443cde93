package domain

// RelevanceTier is the coarse three-level ranking attached to AI results.
// Only RelevanceHigh is distinguished downstream (a "Best match" label);
// medium and low are accepted but rendered alike.
type RelevanceTier string

const (
	RelevanceHigh   RelevanceTier = "high"
	RelevanceMedium RelevanceTier = "medium"
	RelevanceLow    RelevanceTier = "low"
)

// IsValid checks if the tier is one of the three known levels.
func (t RelevanceTier) IsValid() bool {
	switch t {
	case RelevanceHigh, RelevanceMedium, RelevanceLow:
		return true
	}
	return false
}

// AISearchResult is one entry of the AI search response, produced fresh per
// request and never persisted.
type AISearchResult struct {
	Path      string        `json:"path"`
	Title     string        `json:"title"`
	Category  string        `json:"category"`
	Relevance RelevanceTier `json:"relevance"`
	Snippet   string        `json:"snippet"`
}

// Validate checks the minimum attributes a usable result must carry.
func (r AISearchResult) Validate() error {
	if r.Path == "" || r.Title == "" {
		return ErrMissingRequiredField
	}
	if !r.Relevance.IsValid() {
		return ErrInvalidRelevance
	}
	return nil
}

// AISearchPayload is the full AI search response: an ordered result list
// plus a one-sentence summary.
type AISearchPayload struct {
	Results   []AISearchResult `json:"results"`
	AISummary string           `json:"aiSummary"`
}

// DegradedSummary is returned when the gateway produced output that could
// not be parsed as a result payload. A malformed AI response is expected to
// happen occasionally and must not surface as a failure.
const DegradedSummary = "Sorry, I couldn't put together an answer for that one. The regular search results below should still help."

// DegradedPayload returns the well-formed empty payload used when the
// gateway response cannot be parsed.
func DegradedPayload() *AISearchPayload {
	return &AISearchPayload{
		Results:   []AISearchResult{},
		AISummary: DegradedSummary,
	}
}
