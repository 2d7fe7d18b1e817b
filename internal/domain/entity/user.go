package entity

import (
	"time"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User is the profile document of an account. It is created lazily with
// defaults on the first authenticated session and mutated only by its owner.
type User struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Location  string    `json:"location" firestore:"location"`
	PhotoURL  string    `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Role      string    `json:"role" firestore:"role"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
