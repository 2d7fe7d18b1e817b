package router

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/adapter/api/middleware"
	"cambiazo/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e)
	SetupUserRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, limiter)
	SetupJobRouter(e, authMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware, limiter)
	SetupSearchRouter(e, authMiddleware, limiter)
	SetupHealthRouter(e)
}
