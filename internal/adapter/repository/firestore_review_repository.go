package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/repository"
	"cambiazo/internal/infrastructure/feed"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

// reviews received by an account live in that account's private
// subcollection; the target id is implied by the path.
func (r *firestoreReviewRepository) reviews(targetUserID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(targetUserID).Collection("reviews")
}

func (r *firestoreReviewRepository) Add(ctx context.Context, targetUserID string, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.Timestamp.IsZero() {
		review.Timestamp = time.Now()
	}

	_, err := r.reviews(targetUserID).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByTarget(ctx context.Context, targetUserID string) ([]*entity.Review, error) {
	iter := r.reviewQuery(targetUserID).Documents(ctx)
	var reviews []*entity.Review

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}
		if review, ok := decodeReview(doc); ok {
			reviews = append(reviews, review)
		}
	}

	return reviews, nil
}

func (r *firestoreReviewRepository) Watch(ctx context.Context, targetUserID string, onSnapshot func([]*entity.Review), onError func(error)) repository.Subscription {
	return feed.Watch(ctx, r.reviewQuery(targetUserID), decodeReview, onSnapshot, onError)
}

func (r *firestoreReviewRepository) reviewQuery(targetUserID string) firestore.Query {
	return r.reviews(targetUserID).OrderBy("timestamp", firestore.Desc)
}

func decodeReview(doc *firestore.DocumentSnapshot) (*entity.Review, bool) {
	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		logger.Warn("Skipping malformed review %s: %v", doc.Ref.ID, err)
		return nil, false
	}
	review.ID = doc.Ref.ID
	return &review, true
}
