package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/usecase/interfaces"
)

const defaultReviewsTTL = time.Hour

type IReviewsUseCase interface {
	Reviews(ctx context.Context) entities.ReviewSummary
}

// ReviewsUseCase proxies Google reviews behind an in-memory cache. Only successful
// upstream responses are cached; failures serve the configured fallback list.
type ReviewsUseCase struct {
	provider interfaces.IReviewsProvider
	fallback []entities.Review
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	cached   entities.ReviewSummary
	cachedAt time.Time
	hasCache bool
}

var _ IReviewsUseCase = (*ReviewsUseCase)(nil)

func NewReviewsUseCase(provider interfaces.IReviewsProvider, fallback []entities.Review, ttl time.Duration) *ReviewsUseCase {
	if ttl <= 0 {
		ttl = defaultReviewsTTL
	}
	return &ReviewsUseCase{provider: provider, fallback: fallback, ttl: ttl, now: time.Now}
}

func (u *ReviewsUseCase) Reviews(ctx context.Context) entities.ReviewSummary {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	if u.hasCache && now.Sub(u.cachedAt) < u.ttl {
		return u.cached
	}
	if u.provider == nil {
		return u.fallbackSummary()
	}

	s, err := u.provider.FetchReviews(ctx)
	if err != nil {
		log.Printf("[reviews][usecase] upstream failed, serving fallback err=%v", err)
		if u.hasCache {
			return u.cached
		}
		return u.fallbackSummary()
	}
	if s.Reviews == nil {
		s.Reviews = []entities.Review{}
	}
	s.Source = entities.ReviewSourceGoogle
	u.cached, u.cachedAt, u.hasCache = s, now, true
	log.Printf("[reviews][usecase] refreshed reviews=%d rating=%.1f total=%d", len(s.Reviews), s.Rating, s.TotalRatings)
	return s
}

func (u *ReviewsUseCase) fallbackSummary() entities.ReviewSummary {
	out := entities.ReviewSummary{Reviews: make([]entities.Review, len(u.fallback)), Source: entities.ReviewSourceFallback}
	copy(out.Reviews, u.fallback)
	var sum int
	for _, r := range out.Reviews {
		sum += r.Rating
	}
	if len(out.Reviews) > 0 {
		out.Rating = float64(sum) / float64(len(out.Reviews))
		out.TotalRatings = len(out.Reviews)
	}
	return out
}
