package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"
)

const (
	dashboardMonths      = 6
	monthLabelLayout     = "2006-01"
	unknownReferral      = "unknown"
	dashboardSourceMain  = "primary"
	dashboardSourceAlt   = "fallback"
	dashboardSourceEmpty = "none"
)

type MonthlyMetric struct {
	Month   string  `json:"month"`
	Jobs    int     `json:"jobs"`
	Revenue float64 `json:"revenue"`
}

type ServiceMetric struct {
	ServiceType entities.ServiceType `json:"service_type"`
	Jobs        int                  `json:"jobs"`
	Revenue     float64              `json:"revenue"`
}

type ReferralMetric struct {
	Source string `json:"source"`
	Jobs   int    `json:"jobs"`
}

type StatusMetric struct {
	Status entities.JobStatus `json:"status"`
	Jobs   int                `json:"jobs"`
}

type DashboardMetrics struct {
	TotalJobs         int              `json:"total_jobs"`
	CompletedJobs     int              `json:"completed_jobs"`
	PendingJobs       int              `json:"pending_jobs"`
	TotalRevenue      float64          `json:"total_revenue"`
	AvgJobValue       float64          `json:"avg_job_value"`
	AvgCompletionDays float64          `json:"avg_completion_days"`
	Monthly           []MonthlyMetric  `json:"monthly"`
	ByService         []ServiceMetric  `json:"by_service"`
	ByReferral        []ReferralMetric `json:"by_referral"`
	ByStatus          []StatusMetric   `json:"by_status"`
	Degraded          bool             `json:"degraded"`
	Source            string           `json:"source"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

type IDashboardUseCase interface {
	Metrics(ctx context.Context) DashboardMetrics
}

// DashboardUseCase reads through the privileged connection first and the direct-query
// connection second. When both fail it reports empty metrics flagged as degraded.
type DashboardUseCase struct {
	primary  interfaces.IJobReader
	fallback interfaces.IJobReader
	now      func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(primary, fallback interfaces.IJobReader) *DashboardUseCase {
	return &DashboardUseCase{primary: primary, fallback: fallback, now: time.Now}
}

func (u *DashboardUseCase) Metrics(ctx context.Context) DashboardMetrics {
	now := u.now().UTC()
	jobs, source, ok := u.load(ctx)
	m := aggregateJobs(jobs, now)
	m.Source = source
	m.Degraded = !ok
	return m
}

func (u *DashboardUseCase) load(ctx context.Context) ([]entities.Job, string, bool) {
	if u.primary != nil {
		jobs, err := u.primary.ListAll(ctx)
		if err == nil {
			return jobs, dashboardSourceMain, true
		}
		log.Printf("[dashboard][usecase] primary read failed err=%v", err)
	}
	if u.fallback != nil {
		jobs, err := u.fallback.ListAll(ctx)
		if err == nil {
			return jobs, dashboardSourceAlt, true
		}
		log.Printf("[dashboard][usecase] fallback read failed err=%v", err)
	}
	log.Printf("[dashboard][usecase] no job source available; returning empty metrics")
	return nil, dashboardSourceEmpty, false
}

func aggregateJobs(jobs []entities.Job, now time.Time) DashboardMetrics {
	m := DashboardMetrics{
		Monthly:     make([]MonthlyMetric, dashboardMonths),
		ByService:   []ServiceMetric{},
		ByReferral:  []ReferralMetric{},
		ByStatus:    []StatusMetric{},
		GeneratedAt: now,
	}

	monthIdx := make(map[string]int, dashboardMonths)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < dashboardMonths; i++ {
		label := first.AddDate(0, i-(dashboardMonths-1), 0).Format(monthLabelLayout)
		m.Monthly[i] = MonthlyMetric{Month: label}
		monthIdx[label] = i
	}

	byService := map[entities.ServiceType]*ServiceMetric{}
	byReferral := map[string]int{}
	byStatus := map[entities.JobStatus]int{}

	var valued int
	var completionDays float64
	var timed int

	for _, j := range jobs {
		m.TotalJobs++
		byStatus[j.Status]++

		ref := j.ReferralSource
		if ref == "" {
			ref = unknownReferral
		}
		byReferral[ref]++

		sm, ok := byService[j.ServiceType]
		if !ok {
			sm = &ServiceMetric{ServiceType: j.ServiceType}
			byService[j.ServiceType] = sm
		}
		sm.Jobs++

		var revenue float64
		switch j.Status {
		case entities.JobStatusPending:
			m.PendingJobs++
		case entities.JobStatusCompleted:
			m.CompletedJobs++
			if j.FinalAmount != nil {
				revenue = *j.FinalAmount
				valued++
			}
			if j.CompletedDate != nil && j.ScheduledDate != nil {
				d := j.CompletedDate.Sub(*j.ScheduledDate).Hours() / 24
				if d < 0 {
					d = 0
				}
				completionDays += d
				timed++
			}
		}
		m.TotalRevenue += revenue
		sm.Revenue += revenue

		if i, ok := monthIdx[j.CreatedAt.UTC().Format(monthLabelLayout)]; ok {
			m.Monthly[i].Jobs++
			m.Monthly[i].Revenue += revenue
		}
	}

	if valued > 0 {
		m.AvgJobValue = m.TotalRevenue / float64(valued)
	}
	if timed > 0 {
		m.AvgCompletionDays = completionDays / float64(timed)
	}

	for _, sm := range byService {
		m.ByService = append(m.ByService, *sm)
	}
	sort.Slice(m.ByService, func(i, j int) bool {
		if m.ByService[i].Jobs != m.ByService[j].Jobs {
			return m.ByService[i].Jobs > m.ByService[j].Jobs
		}
		return m.ByService[i].ServiceType < m.ByService[j].ServiceType
	})
	for src, n := range byReferral {
		m.ByReferral = append(m.ByReferral, ReferralMetric{Source: src, Jobs: n})
	}
	sort.Slice(m.ByReferral, func(i, j int) bool {
		if m.ByReferral[i].Jobs != m.ByReferral[j].Jobs {
			return m.ByReferral[i].Jobs > m.ByReferral[j].Jobs
		}
		return m.ByReferral[i].Source < m.ByReferral[j].Source
	})
	for _, st := range entities.JobStatuses() {
		if n := byStatus[st]; n > 0 {
			m.ByStatus = append(m.ByStatus, StatusMetric{Status: st, Jobs: n})
		}
	}
	return m
}
