package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"appraisal_booking/internal/domain/entities"
	mock_interfaces "appraisal_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAggregateJobs(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	t.Run("six completed and four pending", func(t *testing.T) {
		var jobs []entities.Job
		var sum float64
		for i := 1; i <= 6; i++ {
			amount := float64(i * 100)
			sum += amount
			scheduled := now.AddDate(0, 0, -10)
			completed := scheduled.AddDate(0, 0, 2)
			jobs = append(jobs, entities.Job{
				Status: entities.JobStatusCompleted, ServiceType: entities.ServiceAppraisal, FinalAmount: &amount,
				ScheduledDate: &scheduled, CompletedDate: &completed, ReferralSource: "google", CreatedAt: now.AddDate(0, -1, 0),
			})
		}
		for i := 0; i < 4; i++ {
			jobs = append(jobs, entities.Job{Status: entities.JobStatusPending, ServiceType: entities.ServicePhotography, CreatedAt: now})
		}

		m := aggregateJobs(jobs, now)
		if m.TotalJobs != 10 || m.CompletedJobs != 6 || m.PendingJobs != 4 {
			t.Fatalf("unexpected counts %+v", m)
		}
		if m.TotalRevenue != sum || math.Abs(m.AvgJobValue-sum/6) > 1e-9 {
			t.Fatalf("unexpected revenue %.2f avg %.2f", m.TotalRevenue, m.AvgJobValue)
		}
		if m.AvgCompletionDays != 2 {
			t.Fatalf("expected 2 completion days, got %v", m.AvgCompletionDays)
		}
		if len(m.Monthly) != 6 || m.Monthly[0].Month != "2026-05" || m.Monthly[5].Month != "2026-10" {
			t.Fatalf("unexpected months %+v", m.Monthly)
		}
		if m.Monthly[4].Jobs != 6 || m.Monthly[4].Revenue != sum || m.Monthly[5].Jobs != 4 {
			t.Fatalf("unexpected monthly buckets %+v", m.Monthly)
		}
		if m.ByService[0].ServiceType != entities.ServiceAppraisal || m.ByService[0].Revenue != sum {
			t.Fatalf("unexpected service breakdown %+v", m.ByService)
		}
		if len(m.ByReferral) != 2 || m.ByReferral[0].Source != "google" || m.ByReferral[1].Source != "unknown" {
			t.Fatalf("unexpected referral breakdown %+v", m.ByReferral)
		}
		if len(m.ByStatus) != 2 {
			t.Fatalf("unexpected status breakdown %+v", m.ByStatus)
		}
	})

	t.Run("no completed jobs yields zero averages", func(t *testing.T) {
		m := aggregateJobs([]entities.Job{{Status: entities.JobStatusPending}}, now)
		if m.AvgJobValue != 0 || m.AvgCompletionDays != 0 || math.IsNaN(m.AvgJobValue) {
			t.Fatalf("unexpected averages %+v", m)
		}
	})

	t.Run("completed before scheduled counts as zero days", func(t *testing.T) {
		scheduled := now
		completed := now.AddDate(0, 0, -3)
		m := aggregateJobs([]entities.Job{{Status: entities.JobStatusCompleted, ScheduledDate: &scheduled, CompletedDate: &completed}}, now)
		if m.AvgCompletionDays != 0 {
			t.Fatalf("expected 0, got %v", m.AvgCompletionDays)
		}
	})

	t.Run("completed without final amount is not averaged", func(t *testing.T) {
		amount := 500.0
		m := aggregateJobs([]entities.Job{
			{Status: entities.JobStatusCompleted, FinalAmount: &amount},
			{Status: entities.JobStatusCompleted},
			{Status: entities.JobStatusInvoicePaid, FinalAmount: &amount},
		}, now)
		if m.TotalRevenue != 500 || m.AvgJobValue != 500 || m.CompletedJobs != 2 {
			t.Fatalf("unexpected metrics %+v", m)
		}
	})
}

func TestDashboardUseCase_Metrics(t *testing.T) {
	t.Run("falls back to the secondary reader", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mock_interfaces.NewMockIJobReader(ctrl)
		fallback := mock_interfaces.NewMockIJobReader(ctrl)
		uc := NewDashboardUseCase(primary, fallback)

		primary.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("permission denied"))
		fallback.EXPECT().ListAll(gomock.Any()).Return([]entities.Job{{Status: entities.JobStatusPending}}, nil)

		m := uc.Metrics(context.Background())
		if m.Degraded || m.Source != "fallback" || m.TotalJobs != 1 {
			t.Fatalf("unexpected metrics %+v", m)
		}
	})

	t.Run("both readers fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		primary := mock_interfaces.NewMockIJobReader(ctrl)
		fallback := mock_interfaces.NewMockIJobReader(ctrl)
		uc := NewDashboardUseCase(primary, fallback)

		primary.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("down"))
		fallback.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("down"))

		m := uc.Metrics(context.Background())
		if !m.Degraded || m.Source != "none" || m.TotalJobs != 0 || len(m.Monthly) != 6 {
			t.Fatalf("unexpected metrics %+v", m)
		}
	})
}
