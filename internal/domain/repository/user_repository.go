package repository

import (
	"context"

	"cambiazo/internal/domain/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// Save writes the profile with merge semantics so unset fields keep
	// their stored values.
	Save(ctx context.Context, user *entity.User) error
}
