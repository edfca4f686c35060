package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidJobID      = errors.New("invalid job id")
	ErrJobNotFound       = errors.New("job not found")
	ErrInvalidJobStatus  = errors.New("invalid job status")
	ErrInvalidJobService = errors.New("invalid service type")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidJob        = errors.New("invalid job")
	ErrExportUnavailable = errors.New("export not configured")
)

const maxJobListLimit = 500

// JobListQuery is the raw admin filter; blank fields mean "any".
type JobListQuery struct {
	Status      string
	ServiceType string
	Limit       int
	Offset      int
}

type JobExport struct {
	Filename    string
	ContentType string
	Body        []byte
}

type IJobUseCase interface {
	List(ctx context.Context, q JobListQuery) ([]entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	UpdateStatus(ctx context.Context, id, status string) (entities.Job, error)
	UpdateAmounts(ctx context.Context, id string, quotedAmount, finalAmount *float64) (entities.Job, error)
	Export(ctx context.Context, q JobListQuery) (JobExport, error)
}

type JobUseCase struct {
	repo     interfaces.IJobRepository
	exporter interfaces.IJobExporter
	now      func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, exporter interfaces.IJobExporter) *JobUseCase {
	return &JobUseCase{repo: repo, exporter: exporter, now: time.Now}
}

func (u *JobUseCase) filter(q JobListQuery) (entities.JobFilter, error) {
	var f entities.JobFilter
	if s := strings.TrimSpace(q.Status); s != "" {
		st, ok := entities.ParseJobStatus(s)
		if !ok {
			return f, ErrInvalidJobStatus
		}
		f.Status = st
	}
	if s := strings.TrimSpace(q.ServiceType); s != "" {
		st, ok := entities.ParseServiceType(s)
		if !ok {
			return f, ErrInvalidJobService
		}
		f.ServiceType = st
	}
	f.Limit = q.Limit
	if f.Limit > maxJobListLimit {
		f.Limit = maxJobListLimit
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if q.Offset > 0 {
		f.Offset = q.Offset
	}
	return f, nil
}

func (u *JobUseCase) List(ctx context.Context, q JobListQuery) ([]entities.Job, error) {
	f, err := u.filter(q)
	if err != nil {
		return nil, err
	}
	jobs, err := u.repo.List(ctx, f)
	if err != nil {
		log.Printf("[job][usecase] list failed status=%s service=%s err=%v", f.Status, f.ServiceType, err)
		return nil, err
	}
	if jobs == nil {
		jobs = []entities.Job{}
	}
	return jobs, nil
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// Create is the back-office path for jobs that did not come through a booking.
func (u *JobUseCase) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	j.ClientName = strings.TrimSpace(j.ClientName)
	j.ClientEmail = strings.TrimSpace(j.ClientEmail)
	j.PropertyAddress = strings.TrimSpace(j.PropertyAddress)
	if j.ClientName == "" || j.PropertyAddress == "" {
		return entities.Job{}, ErrInvalidJob
	}
	st, ok := entities.ParseServiceType(string(j.ServiceType))
	if !ok {
		return entities.Job{}, ErrInvalidJobService
	}
	j.ServiceType = st
	if j.Status != "" {
		s, ok := entities.ParseJobStatus(string(j.Status))
		if !ok {
			return entities.Job{}, ErrInvalidJobStatus
		}
		j.Status = s
	}
	if j.QuotedAmount < 0 || (j.FinalAmount != nil && *j.FinalAmount < 0) {
		return entities.Job{}, ErrInvalidAmount
	}
	j.IdempotencyKey = nil

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		log.Printf("[job][usecase] create failed err=%v", err)
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] create success job_id=%s service=%s status=%s", created.ID, created.ServiceType, created.Status)
	return created, nil
}

// UpdateStatus accepts any enum value. Moving to completed stamps completed_date once.
func (u *JobUseCase) UpdateStatus(ctx context.Context, id, status string) (entities.Job, error) {
	st, ok := entities.ParseJobStatus(status)
	if !ok {
		return entities.Job{}, ErrInvalidJobStatus
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}

	var completed *time.Time
	if st == entities.JobStatusCompleted && current.CompletedDate == nil {
		now := u.now().UTC()
		completed = &now
	}
	updated, err := u.repo.UpdateStatus(ctx, current.ID, st, completed)
	if err != nil {
		log.Printf("[job][usecase] update status failed job_id=%s status=%s err=%v", current.ID, st, err)
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] status updated job_id=%s from=%s to=%s", updated.ID, current.Status, updated.Status)
	return updated, nil
}

func (u *JobUseCase) UpdateAmounts(ctx context.Context, id string, quotedAmount, finalAmount *float64) (entities.Job, error) {
	if quotedAmount == nil && finalAmount == nil {
		return entities.Job{}, ErrInvalidAmount
	}
	for _, a := range []*float64{quotedAmount, finalAmount} {
		if a != nil && (*a < 0 || math.IsNaN(*a) || math.IsInf(*a, 0)) {
			return entities.Job{}, ErrInvalidAmount
		}
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	updated, err := u.repo.UpdateAmounts(ctx, current.ID, quotedAmount, finalAmount)
	if err != nil {
		log.Printf("[job][usecase] update amounts failed job_id=%s err=%v", current.ID, err)
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

func (u *JobUseCase) Export(ctx context.Context, q JobListQuery) (JobExport, error) {
	if u.exporter == nil {
		return JobExport{}, ErrExportUnavailable
	}
	f, err := u.filter(q)
	if err != nil {
		return JobExport{}, err
	}
	var jobs []entities.Job
	if f.Status == "" && f.ServiceType == "" && f.Limit == 0 && f.Offset == 0 {
		jobs, err = u.repo.ListAll(ctx)
	} else {
		jobs, err = u.repo.List(ctx, f)
	}
	if err != nil {
		log.Printf("[job][usecase] export load failed err=%v", err)
		return JobExport{}, err
	}
	body, err := u.exporter.Export(jobs)
	if err != nil {
		log.Printf("[job][usecase] export render failed rows=%d err=%v", len(jobs), err)
		return JobExport{}, err
	}
	log.Printf("[job][usecase] export success rows=%d bytes=%d", len(jobs), len(body))
	return JobExport{
		Filename:    "jobs-" + u.now().UTC().Format("20060102") + u.exporter.FileExtension(),
		ContentType: u.exporter.ContentType(),
		Body:        body,
	}, nil
}
