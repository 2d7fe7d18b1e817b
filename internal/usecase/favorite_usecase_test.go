package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cambiazo/internal/domain/entity"
	apperrors "cambiazo/pkg/errors"
)

func seedProduct(repo *fakeProductRepository, id string) {
	repo.Create(context.Background(), &entity.Product{
		ID:        id,
		UserID:    "seller",
		Name:      "Guitarra",
		Price:     "150",
		Category:  "Música y Películas",
		Condition: "Used",
		City:      "Estelí",
	})
}

func TestToggleAddsDenormalizedCopy(t *testing.T) {
	productRepo := newFakeProductRepository()
	favoriteRepo := newFakeFavoriteRepository()
	seedProduct(productRepo, "p1")

	uc := NewFavoriteUseCase(favoriteRepo, productRepo)
	ctx := context.Background()

	result, err := uc.Toggle(ctx, "viewer", "p1")
	assert.NoError(t, err)
	assert.True(t, result.Favorited)

	favorites, err := uc.List(ctx, "viewer")
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
	assert.Equal(t, "p1", favorites[0].ProductID)
	assert.Equal(t, "Guitarra", favorites[0].Name)
	assert.Equal(t, "seller", favorites[0].OriginalUserID)
}

func TestToggleTwiceRestoresOriginalSet(t *testing.T) {
	productRepo := newFakeProductRepository()
	favoriteRepo := newFakeFavoriteRepository()
	seedProduct(productRepo, "p1")

	uc := NewFavoriteUseCase(favoriteRepo, productRepo)
	ctx := context.Background()

	first, err := uc.Toggle(ctx, "viewer", "p1")
	assert.NoError(t, err)
	assert.True(t, first.Favorited)

	second, err := uc.Toggle(ctx, "viewer", "p1")
	assert.NoError(t, err)
	assert.False(t, second.Favorited)

	favorites, err := uc.List(ctx, "viewer")
	assert.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestToggleUnknownProduct(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeFavoriteRepository(), newFakeProductRepository())

	_, err := uc.Toggle(context.Background(), "viewer", "missing")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestFavoritesAreScopedPerUser(t *testing.T) {
	productRepo := newFakeProductRepository()
	favoriteRepo := newFakeFavoriteRepository()
	seedProduct(productRepo, "p1")

	uc := NewFavoriteUseCase(favoriteRepo, productRepo)
	ctx := context.Background()

	_, err := uc.Toggle(ctx, "alice", "p1")
	assert.NoError(t, err)

	favorited, err := uc.IsFavorite(ctx, "bob", "p1")
	assert.NoError(t, err)
	assert.False(t, favorited)
}
