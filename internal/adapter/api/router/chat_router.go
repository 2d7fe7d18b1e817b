package router

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/adapter/api/handler"
	"cambiazo/internal/adapter/api/middleware"
	"cambiazo/internal/infrastructure/ratelimit"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)
	chats.GET("/:peerId", chatHandler.GetConversation)
	chats.POST("/messages", chatHandler.SendMessage,
		middleware.RateLimit(limiter, "send_message"))
}
