package domain

import "time"

// CartItem is one menu item placed in a user's cart. Carts are keyed by the
// owner's email; a payment consumes and deletes the referenced items.
type CartItem struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Email      string    `json:"email" bson:"email"`
	MenuItemID string    `json:"menu_item_id" bson:"menu_item_id"`
	Name       string    `json:"name" bson:"name"`
	Category   string    `json:"category" bson:"category"`
	Price      float64   `json:"price" bson:"price"`
	Image      string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
