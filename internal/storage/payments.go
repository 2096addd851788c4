package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"contest-api/internal/models"
)

func (s *Store) InsertPayment(ctx context.Context, payment *models.Payment) (string, error) {
	res, err := s.payments.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("inserting payment: %w", err)
	}
	return insertedID(res), nil
}

func (s *Store) ListPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cur, err := s.payments.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	payments := []models.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decoding payments: %w", err)
	}
	return payments, nil
}

// Counts use the collection metadata estimate; slight staleness is fine for
// the admin dashboard.

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	return s.users.EstimatedDocumentCount(ctx)
}

func (s *Store) CountContests(ctx context.Context) (int64, error) {
	return s.contests.EstimatedDocumentCount(ctx)
}

func (s *Store) CountPayments(ctx context.Context) (int64, error) {
	return s.payments.EstimatedDocumentCount(ctx)
}

// TotalRevenue sums the price field across every payment record.
func (s *Store) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$price"},
		}}},
	}
	cur, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregating revenue: %w", err)
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decoding revenue aggregation: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalRevenue, nil
}
