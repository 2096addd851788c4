package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"contest-api/internal/models"
)

// All charges go through in the store currency for now.
const paymentCurrency = "usd"

// ChargeProcessor is the external payment collaborator: it creates a charge
// intent and hands back the client-facing secret.
type ChargeProcessor interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type PaymentStore interface {
	InsertPayment(ctx context.Context, payment *models.Payment) (string, error)
	ListPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error)
	DeleteCartItems(ctx context.Context, ids []string) (int64, error)
}

type PaymentService struct {
	store     PaymentStore
	processor ChargeProcessor
	logger    zerolog.Logger
}

func NewPaymentService(store PaymentStore, processor ChargeProcessor, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		store:     store,
		processor: processor,
		logger:    logger,
	}
}

// MinorUnits converts a price to integer minor units, truncating toward zero.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := MinorUnits(price)
	s.logger.Info().Int64("amount", amount).Msg("Creating payment intent")

	clientSecret, err := s.processor.CreateIntent(ctx, amount, paymentCurrency)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amount).Msg("Payment intent creation failed")
		return "", fmt.Errorf("creating payment intent: %w", err)
	}
	return clientSecret, nil
}

// Settle records the payment and then clears the settled cart items. The
// payment insert always happens first: a crash in between leaves a recorded
// payment with stale cart rows, never a cleared cart with no payment. If the
// cart cleanup fails, the partial result is returned alongside the error so
// the caller can reconcile by id.
func (s *PaymentService) Settle(ctx context.Context, payment *models.Payment) (*models.SettlementResult, error) {
	if payment.Currency == "" {
		payment.Currency = paymentCurrency
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	paymentID, err := s.store.InsertPayment(ctx, payment)
	if err != nil {
		s.logger.Error().Err(err).Str("email", payment.Email).Msg("Payment insert failed")
		return nil, fmt.Errorf("recording payment: %w", err)
	}

	result := &models.SettlementResult{
		PaymentResult: models.InsertResult{InsertedID: &paymentID},
	}

	deleted, err := s.store.DeleteCartItems(ctx, payment.CartIDs)
	if err != nil {
		s.logger.Error().Err(err).
			Str("payment_id", paymentID).
			Strs("cart_ids", payment.CartIDs).
			Msg("Cart cleanup failed after payment insert")
		return result, fmt.Errorf("clearing cart after payment %s: %w", paymentID, err)
	}
	result.DeleteResult.DeletedCount = deleted

	s.logger.Info().
		Str("payment_id", paymentID).
		Str("email", payment.Email).
		Int64("carts_cleared", deleted).
		Msg("Payment settled")
	return result, nil
}

func (s *PaymentService) History(ctx context.Context, email string) ([]models.Payment, error) {
	return s.store.ListPaymentsByEmail(ctx, email)
}
