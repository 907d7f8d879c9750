package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// PaymentService records completed checkouts. The charge itself happens at an
// external payment collaborator; by the time this service runs, the money has
// moved and the record is immutable.
type PaymentService struct {
	payments ports.PaymentRepository
	carts    ports.CartRepository
	log      zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, carts ports.CartRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, carts: carts, log: log}
}

// RecordPayment persists the payment and then clears the purchased cart
// items. A failure to clear the cart is logged but does not fail the call:
// the payment record is the source of truth and must not be lost over a
// leftover cart row.
func (s *PaymentService) RecordPayment(ctx context.Context, in ports.RecordPaymentInput) (*domain.Payment, error) {
	payment := &domain.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		MenuItemIDs:   in.MenuItemIDs,
		CartItemIDs:   in.CartItemIDs,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.payments.Insert(ctx, payment)
	if err != nil {
		s.log.Error().Err(err).Str("email", in.Email).Msg("failed to record payment")
		return nil, err
	}

	if len(in.CartItemIDs) > 0 {
		if err := s.carts.DeleteMany(ctx, in.CartItemIDs); err != nil {
			s.log.Warn().Err(err).Str("payment_id", created.ID).Msg("failed to clear cart after payment")
		}
	}

	s.log.Info().Str("payment_id", created.ID).Str("email", in.Email).Float64("price", in.Price).Msg("payment recorded")
	return created, nil
}

func (s *PaymentService) History(ctx context.Context, email string) ([]*domain.Payment, error) {
	return s.payments.FindByEmail(ctx, email)
}
