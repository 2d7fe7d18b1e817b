package router

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/adapter/api/handler"
	"cambiazo/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/users/:userId/reviews", reviewHandler.GetUserReviews)

	authed := e.Group("/v1/users/:userId/reviews")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", reviewHandler.CreateReview)
}
