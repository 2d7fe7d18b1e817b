package router

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/adapter/api/handler"
	"cambiazo/internal/adapter/api/middleware"
)

func SetupJobRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	jobHandler := handler.GetJobHandler()

	jobs := e.Group("/v1/jobs")
	jobs.GET("", jobHandler.ListJobs)

	authed := e.Group("/v1/jobs")
	authed.Use(authMiddleware.Authenticate)
	authed.POST("", jobHandler.CreateJob)
}
