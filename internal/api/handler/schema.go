package handler

import "github.com/bistroboss/ordering-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Menu ---

type createMenuItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
}

type updateMenuItemRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" validate:"omitempty,gt=0"`
	Recipe   *string  `json:"recipe"`
	Image    *string  `json:"image"`
}

// --- Cart ---

type addCartItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
}

// --- Payment ---

type recordPaymentRequest struct {
	Price         float64  `json:"price"          validate:"required,gt=0"`
	TransactionID string   `json:"transaction_id"`
	MenuItemIDs   []string `json:"menu_item_ids"  validate:"required,min=1"`
	CartItemIDs   []string `json:"cart_item_ids"`
}

// --- Users ---

type adminFlagResponse struct {
	Admin bool `json:"admin"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
}
