package handler

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/usecase"
	"cambiazo/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	ProductID string `json:"product_id"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reviewerID := c.Get("uid").(string)
	targetUserID := c.Param("userId")

	review, err := h.reviewUseCase.Add(c.Request().Context(), reviewerID, targetUserID, usecase.CreateReviewInput{
		Rating:    req.Rating,
		Comment:   req.Comment,
		ProductID: req.ProductID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) GetUserReviews(c echo.Context) error {
	summary, err := h.reviewUseCase.GetForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
