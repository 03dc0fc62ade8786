package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hunthub/internal/cache"
)

// RateLimit caps requests per client IP and path within a rolling window.
// The counter lives in redis; when redis is unreachable the cache client
// reports zero and the request is allowed through.
func RateLimit(store *cache.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("rate_limit:%s:%s", c.Path(), c.RealIP())
			count, err := store.Incr(c.Request().Context(), key, window)
			if err != nil {
				return next(c)
			}
			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}
