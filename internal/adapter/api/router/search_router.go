package router

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/adapter/api/handler"
	"cambiazo/internal/adapter/api/middleware"
	"cambiazo/internal/infrastructure/ratelimit"
)

func SetupSearchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	searchHandler := handler.GetSearchHandler()

	e.GET("/v1/vocabularies", searchHandler.GetVocabularies)

	search := e.Group("/v1/search")
	search.Use(authMiddleware.Authenticate)
	search.POST("/smart", searchHandler.SmartSearch,
		middleware.RateLimit(limiter, "smart_search"))
}
