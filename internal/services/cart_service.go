package services

import (
	"context"

	"github.com/rs/zerolog"

	"contest-api/internal/models"
)

type CartStore interface {
	ListCartItems(ctx context.Context, email string) ([]models.CartItem, error)
	InsertCartItem(ctx context.Context, item *models.CartItem) (string, error)
	DeleteCartItem(ctx context.Context, id string) (int64, error)
}

type CartService struct {
	store  CartStore
	logger zerolog.Logger
}

func NewCartService(store CartStore, logger zerolog.Logger) *CartService {
	return &CartService{
		store:  store,
		logger: logger,
	}
}

func (s *CartService) ListByOwner(ctx context.Context, email string) ([]models.CartItem, error) {
	return s.store.ListCartItems(ctx, email)
}

func (s *CartService) Add(ctx context.Context, item *models.CartItem) (string, error) {
	id, err := s.store.InsertCartItem(ctx, item)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("cart_id", id).Str("email", item.Email).Msg("Cart item added")
	return id, nil
}

func (s *CartService) Remove(ctx context.Context, id string) (int64, error) {
	return s.store.DeleteCartItem(ctx, id)
}
