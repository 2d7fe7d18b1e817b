package entity

import (
	"time"
)

// Favorite is a denormalized snapshot of a product, stored in the owning
// account's private favorites subcollection. The document id equals the
// product id, so membership is a point lookup. A favorite stays valid even
// if the original listing is later deleted; the copy is the source of truth
// for the favorites view.
type Favorite struct {
	ID             string    `json:"id" firestore:"id"`
	ProductID      string    `json:"product_id" firestore:"productId"`
	Name           string    `json:"name" firestore:"name"`
	Price          string    `json:"price" firestore:"price"`
	Description    string    `json:"description" firestore:"description"`
	Category       string    `json:"category" firestore:"category"`
	City           string    `json:"city" firestore:"city"`
	Condition      string    `json:"condition" firestore:"condition"`
	ImageURLs      []string  `json:"image_urls" firestore:"imageUrls"`
	OriginalUserID string    `json:"original_user_id" firestore:"originalUserId"`
	AddedAt        time.Time `json:"added_at" firestore:"addedAt"`
}

// FavoriteFromProduct copies the display fields of a product into a favorite
// owned by the viewing account.
func FavoriteFromProduct(p *Product) *Favorite {
	return &Favorite{
		ID:             p.ID,
		ProductID:      p.ID,
		Name:           p.Name,
		Price:          p.Price,
		Description:    p.Description,
		Category:       p.Category,
		City:           p.City,
		Condition:      p.Condition,
		ImageURLs:      p.ImageURLs,
		OriginalUserID: p.UserID,
		AddedAt:        time.Now(),
	}
}
