package entity

import (
	"time"
)

// Job is a published job offer. Jobs carry no price, category or condition;
// the corresponding listing accessors return empty strings so unset criteria
// still match.
type Job struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"user_id" firestore:"userId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	City        string    `json:"city" firestore:"city"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

func (j *Job) ListingName() string        { return j.Title }
func (j *Job) ListingDescription() string { return j.Description }
func (j *Job) ListingCity() string        { return j.City }
func (j *Job) ListingCategory() string    { return "" }
func (j *Job) ListingCondition() string   { return "" }
func (j *Job) ListingPrice() string       { return "" }
