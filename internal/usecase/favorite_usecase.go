package usecase

import (
	"context"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

type ToggleResult struct {
	ProductID string `json:"product_id"`
	Favorited bool   `json:"favorited"`
}

// Toggle flips membership for one product: favorited products are removed,
// everything else is added as a denormalized copy. The check and the write
// are separate steps, so two racing toggles can land as two adds; the last
// write wins because favorites are keyed by product id.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, userID, productID string) (*ToggleResult, error) {
	exists, err := uc.favoriteRepo.Exists(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if exists {
		if err := uc.favoriteRepo.Delete(ctx, userID, productID); err != nil {
			return nil, err
		}
		logger.Debug("Favorite %s removed for %s", productID, userID)
		return &ToggleResult{ProductID: productID, Favorited: false}, nil
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}

	if err := uc.favoriteRepo.Set(ctx, userID, entity.FavoriteFromProduct(product)); err != nil {
		return nil, err
	}

	logger.Debug("Favorite %s added for %s", productID, userID)
	return &ToggleResult{ProductID: productID, Favorited: true}, nil
}

// Remove deletes a favorite regardless of current membership.
func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, productID string) error {
	return uc.favoriteRepo.Delete(ctx, userID, productID)
}

func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	return uc.favoriteRepo.List(ctx, userID)
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, userID, productID)
}

// Watch opens a live feed over the account's favorites.
func (uc *FavoriteUseCase) Watch(ctx context.Context, userID string, onSnapshot func([]*entity.Favorite), onError func(error)) repository.Subscription {
	return uc.favoriteRepo.Watch(ctx, userID, onSnapshot, onError)
}
