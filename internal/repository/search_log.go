// Package repository persists search logs when a database is configured.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/learnhubhq/docsearch/internal/domain"
)

// SearchLogRepository stores search logs for evaluation/feedback loops.
type SearchLogRepository struct {
	pool *pgxpool.Pool
}

func NewSearchLogRepository(pool *pgxpool.Pool) *SearchLogRepository {
	return &SearchLogRepository{pool: pool}
}

func (r *SearchLogRepository) Create(ctx context.Context, entry domain.SearchLogEntry) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO search_logs (id, query, result_paths, result_count, duration_ms)
		 VALUES ($1, $2, $3, $4, $5)`,
		id,
		entry.Query,
		entry.ResultPaths,
		len(entry.ResultPaths),
		entry.DurationMs,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByID retrieves a stored search log.
func (r *SearchLogRepository) GetByID(ctx context.Context, id string) (*domain.SearchLog, error) {
	var log domain.SearchLog
	err := r.pool.QueryRow(ctx,
		`SELECT id, query, result_paths, result_count, duration_ms, created_at
		 FROM search_logs WHERE id = $1`,
		id,
	).Scan(&log.ID, &log.Query, &log.ResultPaths, &log.ResultCount, &log.DurationMs, &log.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &log, nil
}
