package usecase

import (
	"context"
	"strings"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/internal/domain/search"
	"cambiazo/internal/domain/service"
	"cambiazo/internal/infrastructure/feed"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

const maxProductImages = 9

type ProductUseCase struct {
	productRepo repository.ProductRepository
	textService service.TextService

	catalog *feed.Projection[*entity.Product]
	sub     repository.Subscription
}

func NewProductUseCase(productRepo repository.ProductRepository, textService service.TextService) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		textService: textService,
		catalog:     feed.NewProjection[*entity.Product](),
	}
}

// StartCatalogFeed opens the live feed over the public catalog and keeps the
// in-memory projection current until ctx is cancelled. Searches served from
// the projection reflect every remote publication without polling.
func (uc *ProductUseCase) StartCatalogFeed(ctx context.Context) {
	uc.sub = uc.productRepo.Watch(ctx,
		func(products []*entity.Product) {
			uc.catalog.Replace(products)
		},
		func(err error) {
			logger.Error("Product catalog feed failed: %v", err)
		},
	)
}

func (uc *ProductUseCase) StopCatalogFeed() {
	if uc.sub != nil {
		uc.sub.Stop()
	}
}

type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Condition   string   `json:"condition" validate:"required"`
	City        string   `json:"city" validate:"required"`
	ImageURLs   []string `json:"image_urls"`
}

func (uc *ProductUseCase) Create(ctx context.Context, userID string, input CreateProductInput) (*entity.Product, error) {
	if !search.ValidCategory(input.Category) {
		return nil, errors.BadRequest("Unknown category", nil)
	}
	if !search.ValidCity(input.City) {
		return nil, errors.BadRequest("Unknown city", nil)
	}
	if !search.ValidCondition(input.Condition) {
		return nil, errors.BadRequest("Condition must be New or Used", nil)
	}
	if len(input.ImageURLs) > maxProductImages {
		return nil, errors.BadRequest("A listing supports at most 9 images", nil)
	}

	product := &entity.Product{
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       strings.TrimSpace(input.Price),
		Category:    input.Category,
		Condition:   input.Condition,
		City:        input.City,
		ImageURLs:   input.ImageURLs,
	}

	if product.Name == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}
	if product.Description == "" {
		return nil, errors.BadRequest("Description is required", nil)
	}
	if product.Price == "" {
		return nil, errors.BadRequest("Price is required", nil)
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product %s published by %s", product.ID, userID)
	return product, nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// Search filters the current catalog snapshot. Before the first feed
// delivery it falls back to a direct read so early requests still work.
func (uc *ProductUseCase) Search(ctx context.Context, criteria search.Criteria) ([]*entity.Product, error) {
	products, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if criteria.IsZero() {
		return products, nil
	}
	return search.Filter(products, criteria), nil
}

func (uc *ProductUseCase) snapshot(ctx context.Context) ([]*entity.Product, error) {
	if uc.catalog.Ready() {
		return uc.catalog.Items(), nil
	}
	return uc.productRepo.List(ctx)
}

// Watch opens a dedicated live feed over the catalog for one consumer.
func (uc *ProductUseCase) Watch(ctx context.Context, onSnapshot func([]*entity.Product), onError func(error)) repository.Subscription {
	return uc.productRepo.Watch(ctx, onSnapshot, onError)
}

// GenerateDescription asks the text service to draft a listing description
// from the basic facts of the product being composed.
func (uc *ProductUseCase) GenerateDescription(ctx context.Context, name, category, condition string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.BadRequest("Name is required to generate a description", nil)
	}
	if uc.textService == nil {
		return "", errors.Unavailable("Description generation is not configured", nil)
	}

	return uc.textService.GenerateListingDescription(ctx, name, category, condition)
}
