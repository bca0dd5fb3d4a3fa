package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"flowt.dev/flowt/internal/limiter"
)

// RateLimiter throttles requests per client IP against the given store.
// Store errors fail open; a Redis hiccup should not take the API down.
func RateLimiter(store limiter.Store, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := store.Allow(c.Request().Context(), c.RealIP(), limit, window)
			if err != nil {
				log.Printf("rate limiter store error: %v", err)
				return next(c)
			}

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, limiter.ErrRateLimited.Error())
			}

			return next(c)
		}
	}
}
