package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cambiazo/internal/domain/entity"
)

func TestConversationIDIsOrderIndependent(t *testing.T) {
	assert.Equal(t, entity.ConversationID("alice", "bob"), entity.ConversationID("bob", "alice"))
	assert.Equal(t, "alice_bob", entity.ConversationID("bob", "alice"))
}

func TestAverageRating(t *testing.T) {
	reviews := []*entity.Review{
		{Rating: 5},
		{Rating: 3},
		{Rating: 4},
	}

	assert.Equal(t, 4.0, entity.AverageRating(reviews))
	assert.Equal(t, 0.0, entity.AverageRating(nil))

	// Rounded to one decimal place.
	assert.Equal(t, 4.3, entity.AverageRating([]*entity.Review{
		{Rating: 4}, {Rating: 4}, {Rating: 5},
	}))
}

func TestFavoriteFromProductCopiesDisplayFields(t *testing.T) {
	product := &entity.Product{
		ID:          "p1",
		UserID:      "seller",
		Name:        "Guitarra acústica",
		Description: "Con estuche",
		Price:       "150",
		Category:    "Música y Películas",
		Condition:   "Used",
		City:        "Estelí",
		ImageURLs:   []string{"https://example.com/1.jpg"},
	}

	favorite := entity.FavoriteFromProduct(product)

	assert.Equal(t, "p1", favorite.ID)
	assert.Equal(t, "p1", favorite.ProductID)
	assert.Equal(t, "seller", favorite.OriginalUserID)
	assert.Equal(t, product.Name, favorite.Name)
	assert.Equal(t, product.Price, favorite.Price)
	assert.Equal(t, product.ImageURLs, favorite.ImageURLs)
	assert.False(t, favorite.AddedAt.IsZero())
}
