package interfaces

import (
	"context"

	"appraisal_booking/internal/domain/entities"
)

type IReviewsProvider interface {
	FetchReviews(ctx context.Context) (entities.ReviewSummary, error)
}
