package interfaces

import (
	"context"
	"time"
)

// IRateLimitRepository counts a request and returns the count inside the current window.
// The increment and the window reset happen in one atomic statement.
type IRateLimitRepository interface {
	Hit(ctx context.Context, functionName, identifier string, window time.Duration, now time.Time) (int, error)
}
