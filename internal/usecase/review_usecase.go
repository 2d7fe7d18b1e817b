package usecase

import (
	"context"
	"strings"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
	}
}

type CreateReviewInput struct {
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	ProductID string `json:"product_id"`
}

type ReviewSummary struct {
	Reviews       []*entity.Review `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	Count         int              `json:"count"`
}

func (uc *ReviewUseCase) Add(ctx context.Context, reviewerID, targetUserID string, input CreateReviewInput) (*entity.Review, error) {
	if reviewerID == targetUserID {
		return nil, errors.BadRequest("You cannot review yourself", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	review := &entity.Review{
		ReviewerID: reviewerID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		ProductID:  input.ProductID,
	}

	if err := uc.reviewRepo.Add(ctx, targetUserID, review); err != nil {
		return nil, err
	}

	logger.Info("Review %s added for %s by %s", review.ID, targetUserID, reviewerID)
	return review, nil
}

// GetForUser returns the target's reviews, newest first, with the derived
// average rating.
func (uc *ReviewUseCase) GetForUser(ctx context.Context, targetUserID string) (*ReviewSummary, error) {
	reviews, err := uc.reviewRepo.ListByTarget(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	return &ReviewSummary{
		Reviews:       reviews,
		AverageRating: entity.AverageRating(reviews),
		Count:         len(reviews),
	}, nil
}

// Watch opens a live feed over the target's reviews.
func (uc *ReviewUseCase) Watch(ctx context.Context, targetUserID string, onSnapshot func([]*entity.Review), onError func(error)) repository.Subscription {
	return uc.reviewRepo.Watch(ctx, targetUserID, onSnapshot, onError)
}
