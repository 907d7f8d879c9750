package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// RecordPaymentInput carries the data needed to record a completed checkout.
// The actual charge happens at an external payment collaborator; this service
// only persists the outcome and clears the purchased cart items.
type RecordPaymentInput struct {
	Email         string
	Price         float64
	TransactionID string
	MenuItemIDs   []string
	CartItemIDs   []string
}

// PaymentService defines use-case operations for payments.
type PaymentService interface {
	RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error)
	// History returns payments for one user; an empty email returns all
	// (admin listing).
	History(ctx context.Context, email string) ([]*domain.Payment, error)
}
