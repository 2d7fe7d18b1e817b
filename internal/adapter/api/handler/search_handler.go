package handler

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/domain/search"
	"cambiazo/internal/usecase"
	"cambiazo/pkg/response"
)

type SearchHandler struct {
	smartSearchUseCase *usecase.SmartSearchUseCase
}

func NewSearchHandler(smartSearchUseCase *usecase.SmartSearchUseCase) *SearchHandler {
	return &SearchHandler{
		smartSearchUseCase: smartSearchUseCase,
	}
}

type smartSearchRequest struct {
	Query string `json:"query" validate:"required"`
}

// SmartSearch resolves a natural-language query into validated filters and
// returns them with the matching products.
func (h *SearchHandler) SmartSearch(c echo.Context) error {
	var req smartSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.smartSearchUseCase.Search(c.Request().Context(), req.Query)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

// GetVocabularies serves the controlled filter vocabularies so clients can
// render pickers that always match what the filter engine accepts.
func (h *SearchHandler) GetVocabularies(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"cities":     search.Cities,
		"categories": search.Categories,
		"conditions": []string{search.ConditionNew, search.ConditionUsed},
	})
}
