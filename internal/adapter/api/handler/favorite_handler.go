package handler

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/usecase"
	"cambiazo/pkg/response"
	"cambiazo/pkg/utils"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	productID := c.Param("productId")

	result, err := h.favoriteUseCase.Toggle(c.Request().Context(), userID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	favorites, err := h.favoriteUseCase.List(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	total := int64(len(favorites))
	start := params.Offset
	if start > len(favorites) {
		start = len(favorites)
	}
	end := start + params.PageSize
	if end > len(favorites) {
		end = len(favorites)
	}

	return response.Paginated(c, favorites[start:end], total, params.Page, params.PageSize)
}

// RemoveFavorite deletes a favorite outright, as the favorites view does.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	productID := c.Param("productId")

	if err := h.favoriteUseCase.Remove(c.Request().Context(), userID, productID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id": productID,
		"favorited":  false,
	})
}

func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)
	productID := c.Param("productId")

	favorited, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), userID, productID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product_id": productID,
		"favorited":  favorited,
	})
}
