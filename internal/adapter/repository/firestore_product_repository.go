package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/internal/infrastructure/feed"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) products() *firestore.CollectionRef {
	return r.client.Collection("products")
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		doc := r.products().NewDoc()
		product.ID = doc.ID
	}

	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}

	_, err := r.products().Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.products().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	product.ID = doc.Ref.ID

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	iter := r.productQuery().Documents(ctx)
	var products []*entity.Product

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}
		if product, ok := decodeProduct(doc); ok {
			products = append(products, product)
		}
	}

	return products, nil
}

func (r *firestoreProductRepository) Watch(ctx context.Context, onSnapshot func([]*entity.Product), onError func(error)) repository.Subscription {
	return feed.Watch(ctx, r.productQuery(), decodeProduct, onSnapshot, onError)
}

func (r *firestoreProductRepository) productQuery() firestore.Query {
	return r.products().OrderBy("createdAt", firestore.Desc)
}

func decodeProduct(doc *firestore.DocumentSnapshot) (*entity.Product, bool) {
	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		logger.Warn("Skipping malformed product %s: %v", doc.Ref.ID, err)
		return nil, false
	}
	product.ID = doc.Ref.ID
	return &product, true
}
