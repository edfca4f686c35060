package usecase

import (
	"context"
	"log"
	"time"

	"appraisal_booking/internal/usecase/interfaces"
)

type RateLimitDecision struct {
	Allowed    bool
	Count      int
	Limit      int
	RetryAfter time.Duration
}

type IRateLimitUseCase interface {
	Allow(ctx context.Context, functionName, identifier string) RateLimitDecision
}

// RateLimitUseCase fails open: a limiter error never blocks a request.
type RateLimitUseCase struct {
	repo        interfaces.IRateLimitRepository
	window      time.Duration
	maxRequests int
	now         func() time.Time
}

var _ IRateLimitUseCase = (*RateLimitUseCase)(nil)

func NewRateLimitUseCase(repo interfaces.IRateLimitRepository, window time.Duration, maxRequests int) *RateLimitUseCase {
	if window <= 0 {
		window = time.Hour
	}
	return &RateLimitUseCase{repo: repo, window: window, maxRequests: maxRequests, now: time.Now}
}

func (u *RateLimitUseCase) Allow(ctx context.Context, functionName, identifier string) RateLimitDecision {
	d := RateLimitDecision{Allowed: true, Limit: u.maxRequests}
	if u.repo == nil || u.maxRequests <= 0 || identifier == "" {
		return d
	}
	count, err := u.repo.Hit(ctx, functionName, identifier, u.window, u.now().UTC())
	if err != nil {
		log.Printf("[ratelimit][usecase] hit failed fn=%s id=%s err=%v", functionName, identifier, err)
		return d
	}
	d.Count = count
	if count > u.maxRequests {
		d.Allowed = false
		d.RetryAfter = u.window
		log.Printf("[ratelimit][usecase] limited fn=%s id=%s count=%d limit=%d", functionName, identifier, count, u.maxRequests)
	}
	return d
}
