package entity

import (
	"time"
)

// Review is an append-only rating left for another account. Reviews live in
// the target account's private reviews subcollection; the target id is
// implied by the path.
type Review struct {
	ID         string    `json:"id" firestore:"id"`
	ReviewerID string    `json:"reviewer_id" firestore:"reviewerId"`
	Rating     int       `json:"rating" firestore:"rating"`
	Comment    string    `json:"comment" firestore:"comment"`
	ProductID  string    `json:"product_id,omitempty" firestore:"productId,omitempty"`
	Timestamp  time.Time `json:"timestamp" firestore:"timestamp"`
}

// AverageRating is the arithmetic mean of all ratings rounded to one decimal
// place, or 0 when there are no reviews.
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}

	avg := float64(total) / float64(len(reviews))
	return float64(int(avg*10+0.5)) / 10
}
