package middleware

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"appraisal_booking/internal/usecase"
	"appraisal_booking/pkg"

	"github.com/gin-gonic/gin"
)

// RateLimit bounds calls to one public function per client address. A nil limiter lets
// everything through.
func RateLimit(limiter usecase.IRateLimitUseCase, functionName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		d := limiter.Allow(c.Request.Context(), functionName, c.ClientIP())
		if !d.Allowed {
			log.Printf("[ratelimit][middleware] rejected function=%s ip=%s count=%d limit=%d", functionName, c.ClientIP(), d.Count, d.Limit)
			if d.RetryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(math.Ceil(d.RetryAfter.Seconds()))))
			}
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
