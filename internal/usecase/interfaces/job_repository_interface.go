package interfaces

import (
	"context"
	"time"

	"appraisal_booking/internal/domain/entities"
)

// IJobRepository abstracts Postgres persistence for Job.
//
// Getters return a zero Job (empty ID) when the row does not exist.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	GetByIdempotencyKey(ctx context.Context, key string) (entities.Job, error)
	List(ctx context.Context, f entities.JobFilter) ([]entities.Job, error)
	ListAll(ctx context.Context) ([]entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus, completedDate *time.Time) (entities.Job, error)
	UpdateAmounts(ctx context.Context, id string, quotedAmount, finalAmount *float64) (entities.Job, error)
}

// IJobReader is the read path used by the admin dashboard.
type IJobReader interface {
	ListAll(ctx context.Context) ([]entities.Job, error)
}
