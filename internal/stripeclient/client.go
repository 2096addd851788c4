package stripeclient

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Client is a thin wrapper over the Stripe PaymentIntents API.
type Client struct {
	logger zerolog.Logger
}

func New(secretKey string, logger zerolog.Logger) *Client {
	if secretKey == "" {
		logger.Warn().Msg("STRIPE_SECRET_KEY not set, payment intents will fail")
	}
	stripe.Key = secretKey
	return &Client{logger: logger}
}

func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		c.logger.Error().Err(err).Int64("amount", amount).Str("currency", currency).Msg("Stripe payment intent failed")
		return "", err
	}
	return pi.ClientSecret, nil
}
