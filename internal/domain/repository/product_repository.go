package repository

import (
	"context"

	"cambiazo/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Watch opens a live feed over the public products collection. Every
	// remote change delivers the full current result set to onSnapshot;
	// delivery errors go to onError and leave the previous snapshot in
	// place.
	Watch(ctx context.Context, onSnapshot func([]*entity.Product), onError func(error)) Subscription
}
