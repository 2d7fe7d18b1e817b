package router

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/adapter/api/handler"
	"cambiazo/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users/me")
	users.Use(authMiddleware.Authenticate)
	users.GET("", userHandler.GetProfile)
	users.PUT("", userHandler.UpdateProfile)
	users.POST("/photo", userHandler.UploadPhoto)
}
