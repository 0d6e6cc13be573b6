// internal/interface/httpapi/router.go
package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// RegisterRoutes wires all API routes. The public submission endpoints carry
// their own rate limits; admin reads and writes are unthrottled here.
func RegisterRoutes(
	e *echo.Echo,
	callbackHandler *CallbackHandler,
	contactHandler *ContactHandler,
	orderHandler *OrderHandler,
) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// Callback requests
	callbacks := api.Group("/callback")
	callbacks.POST("", callbackHandler.Create, submissionRateLimit(2, 15*time.Minute))
	callbacks.GET("", callbackHandler.List)
	callbacks.GET("/stats", callbackHandler.Stats)
	callbacks.GET("/:id", callbackHandler.Get)
	callbacks.PUT("/:id", callbackHandler.Update)
	callbacks.DELETE("/:id", callbackHandler.Delete)

	// Contact inquiries (historically mounted under /package)
	contacts := api.Group("/package")
	contacts.POST("", contactHandler.Create, submissionRateLimit(3, 15*time.Minute))
	contacts.GET("", contactHandler.List)
	contacts.GET("/plan/:plan", contactHandler.ListByPlan)
	contacts.GET("/:id", contactHandler.Get)
	contacts.DELETE("/:id", contactHandler.Delete)

	// Package orders
	orders := api.Group("/order")
	orders.POST("", orderHandler.Create, submissionRateLimit(3, 15*time.Minute))
	orders.GET("/orders", orderHandler.List)
	orders.GET("/orders/:id", orderHandler.Get)
}

// submissionRateLimit allows max submissions per window for each client IP.
func submissionRateLimit(max int, window time.Duration) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(max) / window.Seconds()),
			Burst:     max,
			ExpiresIn: window,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]any{
				"success": false,
				"message": "Too many submissions. Please try again later.",
			})
		},
	})
}
