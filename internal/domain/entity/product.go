package entity

import (
	"time"
)

// Product is a published sale listing. Listings are write-once: identity is
// fixed at creation and the document is never edited in place.
type Product struct {
	ID          string    `json:"id" firestore:"id"`
	UserID      string    `json:"user_id" firestore:"userId"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       string    `json:"price" firestore:"price"`
	Category    string    `json:"category" firestore:"category"`
	Condition   string    `json:"condition" firestore:"condition"`
	City        string    `json:"city" firestore:"city"`
	ImageURLs   []string  `json:"image_urls" firestore:"imageUrls"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

func (p *Product) ListingName() string        { return p.Name }
func (p *Product) ListingDescription() string { return p.Description }
func (p *Product) ListingCity() string        { return p.City }
func (p *Product) ListingCategory() string    { return p.Category }
func (p *Product) ListingCondition() string   { return p.Condition }
func (p *Product) ListingPrice() string       { return p.Price }
