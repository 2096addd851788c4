package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an immutable record of a completed charge. CartIDs keeps the
// cart-item ids that were settled by this payment.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	Currency      string             `bson:"currency" json:"currency"`
	TransactionID string             `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CartIDs       []string           `bson:"cart_ids" json:"cartIds"`
	Date          time.Time          `bson:"date" json:"date"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
