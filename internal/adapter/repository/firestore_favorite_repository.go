package repository

import (
	"context"

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

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

// favorites lives in the owning account's private subcollection; documents
// are keyed by the favorited product's id.
func (r *firestoreFavoriteRepository) favorites(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("favorites")
}

func (r *firestoreFavoriteRepository) Set(ctx context.Context, userID string, favorite *entity.Favorite) error {
	_, err := r.favorites(userID).Doc(favorite.ProductID).Set(ctx, favorite)
	if err != nil {
		return errors.Internal("Failed to add favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Delete(ctx context.Context, userID, productID string) error {
	_, err := r.favorites(userID).Doc(productID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, userID, productID string) (bool, error) {
	doc, err := r.favorites(userID).Doc(productID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) List(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	iter := r.favorites(userID).Query.Documents(ctx)
	var favorites []*entity.Favorite

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate favorites", err)
		}
		if favorite, ok := decodeFavorite(doc); ok {
			favorites = append(favorites, favorite)
		}
	}

	return favorites, nil
}

func (r *firestoreFavoriteRepository) Watch(ctx context.Context, userID string, onSnapshot func([]*entity.Favorite), onError func(error)) repository.Subscription {
	return feed.Watch(ctx, r.favorites(userID).Query, decodeFavorite, onSnapshot, onError)
}

func decodeFavorite(doc *firestore.DocumentSnapshot) (*entity.Favorite, bool) {
	var favorite entity.Favorite
	if err := doc.DataTo(&favorite); err != nil {
		logger.Warn("Skipping malformed favorite %s: %v", doc.Ref.ID, err)
		return nil, false
	}
	favorite.ID = doc.Ref.ID
	return &favorite, true
}
