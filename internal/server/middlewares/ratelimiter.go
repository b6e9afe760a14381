package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openmined/pulse/internal/server/handlers/api"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter limits requests per client IP. formattedRate uses the limiter
// notation, e.g. "600-M" for 600 requests per minute.
func RateLimiter(formattedRate string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("rate limit %q: %w", formattedRate, err)
	}

	instance := limiter.New(memory.NewStore(), rate)
	return mgin.NewMiddleware(
		instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			api.AbortWithError(c, http.StatusTooManyRequests, api.CodeRateLimited, errRateLimited)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			api.AbortWithError(c, http.StatusInternalServerError, api.CodeInternalError, err)
		}),
	), nil
}
