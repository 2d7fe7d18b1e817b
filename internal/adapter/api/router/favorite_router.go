package router

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/adapter/api/handler"
	"cambiazo/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", favoriteHandler.ListFavorites)
	favorites.GET("/:productId", favoriteHandler.CheckFavorite)
	favorites.POST("/:productId/toggle", favoriteHandler.ToggleFavorite)
	favorites.DELETE("/:productId", favoriteHandler.RemoveFavorite)
}
