package repository

import (
	"context"

	"cambiazo/internal/domain/entity"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	List(ctx context.Context) ([]*entity.Job, error)
	Watch(ctx context.Context, onSnapshot func([]*entity.Job), onError func(error)) Subscription
}
