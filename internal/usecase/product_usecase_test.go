package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cambiazo/internal/domain/search"
	apperrors "cambiazo/pkg/errors"
)

func validProductInput() CreateProductInput {
	return CreateProductInput{
		Name:        "iPhone 12",
		Description: "Telefono en buen estado",
		Price:       "350",
		Category:    "Electrónica",
		Condition:   "Used",
		City:        "Managua",
	}
}

func TestCreateProductValidatesVocabularies(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepository(), nil)
	ctx := context.Background()

	input := validProductInput()
	input.Category = "Gadgets"
	_, err := uc.Create(ctx, "user-1", input)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	input = validProductInput()
	input.City = "Madrid"
	_, err = uc.Create(ctx, "user-1", input)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	input = validProductInput()
	input.Condition = "Refurbished"
	_, err = uc.Create(ctx, "user-1", input)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestCreateProductRejectsTooManyImages(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepository(), nil)

	input := validProductInput()
	for i := 0; i < 10; i++ {
		input.ImageURLs = append(input.ImageURLs, "https://example.com/img.jpg")
	}

	_, err := uc.Create(context.Background(), "user-1", input)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestCreateProductKeepsPriceAsText(t *testing.T) {
	repo := newFakeProductRepository()
	uc := NewProductUseCase(repo, nil)

	input := validProductInput()
	input.Price = "a convenir"

	product, err := uc.Create(context.Background(), "user-1", input)
	assert.NoError(t, err)
	assert.Equal(t, "a convenir", product.Price)
}

func TestSearchServesLiveCatalog(t *testing.T) {
	repo := newFakeProductRepository()
	uc := NewProductUseCase(repo, nil)
	ctx := context.Background()

	uc.StartCatalogFeed(ctx)

	_, err := uc.Create(ctx, "user-1", validProductInput())
	assert.NoError(t, err)

	input := validProductInput()
	input.Name = "Bicicleta"
	input.City = "León"
	_, err = uc.Create(ctx, "user-1", input)
	assert.NoError(t, err)

	all, err := uc.Search(ctx, search.Criteria{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	leon, err := uc.Search(ctx, search.Criteria{City: "León"})
	assert.NoError(t, err)
	assert.Len(t, leon, 1)
	assert.Equal(t, "Bicicleta", leon[0].Name)
}

func TestGenerateDescriptionRequiresTextService(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepository(), nil)

	_, err := uc.GenerateDescription(context.Background(), "Laptop", "Electrónica", "New")
	assert.True(t, apperrors.Is(err, "SERVICE_UNAVAILABLE"))
}

func TestGenerateDescription(t *testing.T) {
	text := &fakeTextService{description: "Excelente laptop para estudiantes."}
	uc := NewProductUseCase(newFakeProductRepository(), text)

	description, err := uc.GenerateDescription(context.Background(), "Laptop", "Electrónica", "New")
	assert.NoError(t, err)
	assert.Equal(t, "Excelente laptop para estudiantes.", description)
}
