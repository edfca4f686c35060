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

func TestReviewsUseCase_Reviews(t *testing.T) {
	fallback := []entities.Review{{AuthorName: "Pat", Rating: 5, Text: "Great"}, {AuthorName: "Lee", Rating: 4}}

	t.Run("caches google results for the ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIReviewsProvider(ctrl)
		uc := NewReviewsUseCase(provider, fallback, time.Hour)
		now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		provider.EXPECT().FetchReviews(gomock.Any()).Return(entities.ReviewSummary{Rating: 4.9, TotalRatings: 87}, nil).Times(2)

		first := uc.Reviews(context.Background())
		second := uc.Reviews(context.Background())
		if first.Source != entities.ReviewSourceGoogle || second.TotalRatings != 87 || first.Reviews == nil {
			t.Fatalf("unexpected summaries %+v %+v", first, second)
		}

		now = now.Add(2 * time.Hour)
		uc.Reviews(context.Background())
	})

	t.Run("upstream failure serves the fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		provider := mock_interfaces.NewMockIReviewsProvider(ctrl)
		uc := NewReviewsUseCase(provider, fallback, time.Hour)

		provider.EXPECT().FetchReviews(gomock.Any()).Return(entities.ReviewSummary{}, errors.New("REQUEST_DENIED"))

		s := uc.Reviews(context.Background())
		if s.Source != entities.ReviewSourceFallback || len(s.Reviews) != 2 || s.Rating != 4.5 {
			t.Fatalf("unexpected summary %+v", s)
		}
	})

	t.Run("empty fallback is never fabricated", func(t *testing.T) {
		s := NewReviewsUseCase(nil, nil, 0).Reviews(context.Background())
		if s.Source != entities.ReviewSourceFallback || s.Reviews == nil || len(s.Reviews) != 0 || s.Rating != 0 {
			t.Fatalf("unexpected summary %+v", s)
		}
	})
}
