package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"appraisal_booking/internal/domain/entities"
	mock_interfaces "appraisal_booking/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testJobID = "3f1c2b8e-5d4a-4c7e-9b1a-2f6e8d9c0a11"

func TestJobUseCase_List(t *testing.T) {
	t.Run("parses filters and caps the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), entities.JobFilter{
			Status: entities.JobStatusCompleted, ServiceType: entities.ServiceAppraisal, Limit: 500, Offset: 10,
		}).Return(nil, nil)

		jobs, err := uc.List(context.Background(), JobListQuery{Status: "Completed", ServiceType: "appraisal", Limit: 10000, Offset: 10})
		if err != nil || jobs == nil {
			t.Fatalf("unexpected result %v err=%v", jobs, err)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		if _, err := uc.List(context.Background(), JobListQuery{Status: "archived"}); !errors.Is(err, ErrInvalidJobStatus) {
			t.Fatalf("expected ErrInvalidJobStatus, got %v", err)
		}
		if _, err := uc.List(context.Background(), JobListQuery{ServiceType: "staging"}); !errors.Is(err, ErrInvalidJobService) {
			t.Fatalf("expected ErrInvalidJobService, got %v", err)
		}
	})
}

func TestJobUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(repo, nil)

	if _, err := uc.GetByID(context.Background(), "42"); !errors.Is(err, ErrInvalidJobID) {
		t.Fatalf("expected ErrInvalidJobID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{}, nil)
	if _, err := uc.GetByID(context.Background(), testJobID); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUseCase_UpdateStatus(t *testing.T) {
	now := time.Date(2026, 5, 2, 15, 0, 0, 0, time.UTC)

	t.Run("completed stamps completed_date once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)
		uc.now = func() time.Time { return now }

		repo.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{ID: testJobID, Status: entities.JobStatusInProgress}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), testJobID, entities.JobStatusCompleted, &now).
			Return(entities.Job{ID: testJobID, Status: entities.JobStatusCompleted, CompletedDate: &now}, nil)

		j, err := uc.UpdateStatus(context.Background(), testJobID, "completed")
		if err != nil || j.CompletedDate == nil {
			t.Fatalf("unexpected result %+v err=%v", j, err)
		}
	})

	t.Run("existing completed_date is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		earlier := now.Add(-48 * time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{ID: testJobID, CompletedDate: &earlier}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), testJobID, entities.JobStatusCompleted, (*time.Time)(nil)).
			Return(entities.Job{ID: testJobID, Status: entities.JobStatusCompleted, CompletedDate: &earlier}, nil)

		if _, err := uc.UpdateStatus(context.Background(), testJobID, "completed"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("any valid status may be set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{ID: testJobID, Status: entities.JobStatusInvoicePaid}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), testJobID, entities.JobStatusPending, (*time.Time)(nil)).
			Return(entities.Job{ID: testJobID, Status: entities.JobStatusPending}, nil)

		if _, err := uc.UpdateStatus(context.Background(), testJobID, "pending"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), testJobID, "archived"); !errors.Is(err, ErrInvalidJobStatus) {
			t.Fatalf("expected ErrInvalidJobStatus, got %v", err)
		}
	})
}

func TestJobUseCase_UpdateAmounts(t *testing.T) {
	neg := -1.0
	if _, err := NewJobUseCase(nil, nil).UpdateAmounts(context.Background(), testJobID, nil, nil); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := NewJobUseCase(nil, nil).UpdateAmounts(context.Background(), testJobID, nil, &neg); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(repo, nil)
	final := 610.0

	repo.EXPECT().GetByID(gomock.Any(), testJobID).Return(entities.Job{ID: testJobID}, nil)
	repo.EXPECT().UpdateAmounts(gomock.Any(), testJobID, (*float64)(nil), &final).
		Return(entities.Job{ID: testJobID, FinalAmount: &final}, nil)

	j, err := uc.UpdateAmounts(context.Background(), testJobID, nil, &final)
	if err != nil || j.FinalAmount == nil || *j.FinalAmount != 610 {
		t.Fatalf("unexpected result %+v err=%v", j, err)
	}
}

func TestJobUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(repo, nil)

	if _, err := uc.Create(context.Background(), entities.Job{ClientName: "Ana", PropertyAddress: "12 Main", ServiceType: "staging"}); !errors.Is(err, ErrInvalidJobService) {
		t.Fatalf("expected ErrInvalidJobService, got %v", err)
	}
	if _, err := uc.Create(context.Background(), entities.Job{ServiceType: "appraisal"}); !errors.Is(err, ErrInvalidJob) {
		t.Fatalf("expected ErrInvalidJob, got %v", err)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, j entities.Job) (entities.Job, error) {
		if j.ServiceType != entities.ServiceFloorPlans || j.IdempotencyKey != nil {
			t.Fatalf("unexpected job %+v", j)
		}
		j.ID = testJobID
		return j, nil
	})
	key := "client-key"
	j, err := uc.Create(context.Background(), entities.Job{ClientName: " Ana ", PropertyAddress: "12 Main", ServiceType: "Floor_Plans", IdempotencyKey: &key})
	if err != nil || j.ID != testJobID || j.ClientName != "Ana" {
		t.Fatalf("unexpected result %+v err=%v", j, err)
	}
}

func TestJobUseCase_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	exporter := mock_interfaces.NewMockIJobExporter(ctrl)
	uc := NewJobUseCase(repo, exporter)
	uc.now = func() time.Time { return time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC) }

	jobs := []entities.Job{{ID: testJobID}}
	repo.EXPECT().ListAll(gomock.Any()).Return(jobs, nil)
	exporter.EXPECT().Export(jobs).Return([]byte("xlsx"), nil)
	exporter.EXPECT().FileExtension().Return(".xlsx")
	exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	out, err := uc.Export(context.Background(), JobListQuery{})
	if err != nil || out.Filename != "jobs-20260502.xlsx" || string(out.Body) != "xlsx" {
		t.Fatalf("unexpected export %+v err=%v", out, err)
	}

	if _, err := NewJobUseCase(repo, nil).Export(context.Background(), JobListQuery{}); !errors.Is(err, ErrExportUnavailable) {
		t.Fatalf("expected ErrExportUnavailable, got %v", err)
	}
}
