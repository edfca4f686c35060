package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const jobColumns = `id, client_name, client_email, client_phone, property_address, service_type,
	status, quoted_amount, final_amount, scheduled_date, completed_date, referral_source,
	property_data, calendar_event_id, idempotency_key, notes, created_at, updated_at`

const defaultJobListLimit = 100

// JobPostgresRepository persists Job rows in the jobs table.
// Rows are never deleted; the lifecycle lives in the status column.
type JobPostgresRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var (
	_ interfaces.IJobRepository = (*JobPostgresRepository)(nil)
	_ interfaces.IJobReader     = (*JobPostgresRepository)(nil)
)

func NewJobPostgresRepository(db *sqlx.DB) *JobPostgresRepository {
	return &JobPostgresRepository{db: db, now: time.Now}
}

func (r *JobPostgresRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.Status == "" {
		j.Status = entities.JobStatusPending
	}
	now := r.now().UTC()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	j.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO jobs
			(`+jobColumns+`)
		VALUES
			(:id, :client_name, :client_email, :client_phone, :property_address, :service_type,
			 :status, :quoted_amount, :final_amount, :scheduled_date, :completed_date, :referral_source,
			 :property_data, :calendar_event_id, :idempotency_key, :notes, :created_at, :updated_at)
	`, j)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Job{}, fmt.Errorf("%w: %v", interfaces.ErrDuplicateKey, err)
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobPostgresRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	return r.getOne(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
}

func (r *JobPostgresRepository) GetByIdempotencyKey(ctx context.Context, key string) (entities.Job, error) {
	return r.getOne(ctx, `SELECT `+jobColumns+` FROM jobs WHERE idempotency_key = $1`, key)
}

func (r *JobPostgresRepository) List(ctx context.Context, f entities.JobFilter) ([]entities.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var (
		conds []string
		args  []interface{}
	)
	idx := 1

	if f.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", idx))
		args = append(args, f.Status)
		idx++
	}
	if f.ServiceType != "" {
		conds = append(conds, fmt.Sprintf("service_type = $%d", idx))
		args = append(args, f.ServiceType)
		idx++
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultJobListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	jobs := []entities.Job{}
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListAll reads every job for in-memory aggregation. No pagination.
func (r *JobPostgresRepository) ListAll(ctx context.Context) ([]entities.Job, error) {
	jobs := []entities.Job{}
	if err := r.db.SelectContext(ctx, &jobs, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateStatus keeps an existing completed_date when completedDate is nil.
func (r *JobPostgresRepository) UpdateStatus(ctx context.Context, id string, status entities.JobStatus, completedDate *time.Time) (entities.Job, error) {
	return r.getOne(ctx, `
		UPDATE jobs SET
			status = $1,
			completed_date = COALESCE($2, completed_date),
			updated_at = $3
		WHERE id = $4
		RETURNING `+jobColumns,
		status, completedDate, r.now().UTC(), id)
}

// UpdateAmounts only touches the amounts that are non-nil.
func (r *JobPostgresRepository) UpdateAmounts(ctx context.Context, id string, quotedAmount, finalAmount *float64) (entities.Job, error) {
	return r.getOne(ctx, `
		UPDATE jobs SET
			quoted_amount = COALESCE($1, quoted_amount),
			final_amount = COALESCE($2, final_amount),
			updated_at = $3
		WHERE id = $4
		RETURNING `+jobColumns,
		quotedAmount, finalAmount, r.now().UTC(), id)
}

func (r *JobPostgresRepository) getOne(ctx context.Context, query string, args ...interface{}) (entities.Job, error) {
	var j entities.Job
	if err := r.db.GetContext(ctx, &j, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	return j, nil
}
