package repository

import (
	"context"
	"time"

	"appraisal_booking/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

// RateLimitPostgresRepository keeps one counter row per (function_name, identifier).
//
// The increment, the window reset and the read happen in one upsert, so concurrent
// requests never observe a stale count.
type RateLimitPostgresRepository struct {
	db *sqlx.DB
}

var _ interfaces.IRateLimitRepository = (*RateLimitPostgresRepository)(nil)

func NewRateLimitPostgresRepository(db *sqlx.DB) *RateLimitPostgresRepository {
	return &RateLimitPostgresRepository{db: db}
}

const rateLimitHitSQL = `
	INSERT INTO rate_limits (function_name, identifier, window_start, request_count)
	VALUES ($1, $2, $3, 1)
	ON CONFLICT (function_name, identifier) DO UPDATE SET
		request_count = CASE
			WHEN rate_limits.window_start <= $4 THEN 1
			ELSE rate_limits.request_count + 1
		END,
		window_start = CASE
			WHEN rate_limits.window_start <= $4 THEN EXCLUDED.window_start
			ELSE rate_limits.window_start
		END
	RETURNING request_count`

func (r *RateLimitPostgresRepository) Hit(ctx context.Context, functionName, identifier string, window time.Duration, now time.Time) (int, error) {
	now = now.UTC()
	var count int
	if err := r.db.GetContext(ctx, &count, rateLimitHitSQL, functionName, identifier, now, now.Add(-window)); err != nil {
		return 0, err
	}
	return count, nil
}
