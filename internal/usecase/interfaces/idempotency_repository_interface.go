package interfaces

import (
	"context"
	"time"

	"appraisal_booking/internal/domain/entities"
)

// IIdempotencyRepository deduplicates booking attempts.
//
//   - Claim stores an in_progress record when the key is new and returns claimed=true.
//     When the key exists it returns the stored record and claimed=false.
//   - MarkPendingJob records the event and partial response once side effects happened,
//     so a retry only repeats the job insert.
//   - Complete stores the final response for replays.
//   - Release removes the key so a failed attempt can be retried.
type IIdempotencyRepository interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (record entities.IdempotencyRecord, claimed bool, err error)
	MarkPendingJob(ctx context.Context, key, eventID string, response []byte) error
	Complete(ctx context.Context, key, jobID, eventID string, response []byte) error
	Release(ctx context.Context, key string) error
}
