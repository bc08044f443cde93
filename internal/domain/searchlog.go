package domain

import "time"

// SearchLogEntry records one completed AI search for evaluation and
// relevance tuning. Logging is best-effort and never user-visible.
type SearchLogEntry struct {
	Query       string
	ResultPaths []string
	DurationMs  int
}

// SearchLog is a stored search log row.
type SearchLog struct {
	ID          string
	Query       string
	ResultPaths []string
	ResultCount int
	DurationMs  int
	CreatedAt   time.Time
}
