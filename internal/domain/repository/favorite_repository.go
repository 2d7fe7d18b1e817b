package repository

import (
	"context"

	"cambiazo/internal/domain/entity"
)

type FavoriteRepository interface {
	// Set writes the favorite under the owning account, keyed by product id.
	Set(ctx context.Context, userID string, favorite *entity.Favorite) error
	Delete(ctx context.Context, userID, productID string) error
	Exists(ctx context.Context, userID, productID string) (bool, error)
	List(ctx context.Context, userID string) ([]*entity.Favorite, error)
	Watch(ctx context.Context, userID string, onSnapshot func([]*entity.Favorite), onError func(error)) Subscription
}
