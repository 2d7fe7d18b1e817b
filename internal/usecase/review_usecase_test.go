package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "cambiazo/pkg/errors"
)

func TestAddReviewRejectsSelfReview(t *testing.T) {
	uc := NewReviewUseCase(newFakeReviewRepository())

	_, err := uc.Add(context.Background(), "alice", "alice", CreateReviewInput{Rating: 5})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestAddReviewValidatesRating(t *testing.T) {
	uc := NewReviewUseCase(newFakeReviewRepository())
	ctx := context.Background()

	_, err := uc.Add(ctx, "alice", "bob", CreateReviewInput{Rating: 0})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))

	_, err = uc.Add(ctx, "alice", "bob", CreateReviewInput{Rating: 6})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestGetForUserComputesAverage(t *testing.T) {
	repo := newFakeReviewRepository()
	uc := NewReviewUseCase(repo)
	ctx := context.Background()

	_, err := uc.Add(ctx, "alice", "bob", CreateReviewInput{Rating: 5, Comment: "Excelente vendedor"})
	assert.NoError(t, err)
	_, err = uc.Add(ctx, "carol", "bob", CreateReviewInput{Rating: 3})
	assert.NoError(t, err)
	_, err = uc.Add(ctx, "dave", "bob", CreateReviewInput{Rating: 4})
	assert.NoError(t, err)

	summary, err := uc.GetForUser(ctx, "bob")
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 4.0, summary.AverageRating)
}

func TestGetForUserWithNoReviews(t *testing.T) {
	uc := NewReviewUseCase(newFakeReviewRepository())

	summary, err := uc.GetForUser(context.Background(), "bob")
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, 0.0, summary.AverageRating)
}
