package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// PaymentRepository defines persistence operations for payment records.
// Payments are append-only: there is deliberately no update method.
type PaymentRepository interface {
	Insert(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	// FindByEmail returns payments for one user; an empty email returns all.
	FindByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
	// TotalRevenue sums the price of every payment via the store's native
	// aggregation. An empty collection yields 0, not an error.
	TotalRevenue(ctx context.Context) (float64, error)
}
