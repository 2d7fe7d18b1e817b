package repository

import (
	"context"

	"cambiazo/internal/domain/entity"
)

type ReviewRepository interface {
	// Add appends a review to the target account's reviews subcollection.
	Add(ctx context.Context, targetUserID string, review *entity.Review) error
	ListByTarget(ctx context.Context, targetUserID string) ([]*entity.Review, error)
	Watch(ctx context.Context, targetUserID string, onSnapshot func([]*entity.Review), onError func(error)) Subscription
}
