package router

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/adapter/api/handler"
	"cambiazo/internal/adapter/api/middleware"
	"cambiazo/internal/infrastructure/ratelimit"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	authed := e.Group("/v1/products")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", productHandler.CreateProduct)
	authed.POST("/generate-description", productHandler.GenerateDescription,
		middleware.RateLimit(limiter, "generate_description"))
}
