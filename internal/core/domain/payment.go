package domain

import "time"

// Payment records a completed checkout. Payments are immutable once inserted:
// there is no update path anywhere in the system. MenuItemIDs may reference
// items that were later removed from the menu; reporting drops such rows
// silently (see the stats service).
type Payment struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Email         string    `json:"email" bson:"email"`
	Price         float64   `json:"price" bson:"price"`
	TransactionID string    `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	MenuItemIDs   []string  `json:"menu_item_ids" bson:"menu_item_ids"`
	CartItemIDs   []string  `json:"cart_item_ids" bson:"cart_item_ids"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
