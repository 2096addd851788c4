package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"contest-api/internal/models"
)

func (s *Store) ListCartItems(ctx context.Context, email string) ([]models.CartItem, error) {
	cur, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("listing cart items: %w", err)
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decoding cart items: %w", err)
	}
	return items, nil
}

func (s *Store) InsertCartItem(ctx context.Context, item *models.CartItem) (string, error) {
	res, err := s.carts.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("inserting cart item: %w", err)
	}
	return insertedID(res), nil
}

func (s *Store) DeleteCartItem(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.carts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("deleting cart item: %w", err)
	}
	return res.DeletedCount, nil
}

// DeleteCartItems removes every cart item whose id is in ids. Ids that no
// longer exist simply do not count toward the result.
func (s *Store) DeleteCartItems(ctx context.Context, ids []string) (int64, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return 0, err
		}
		oids = append(oids, oid)
	}
	res, err := s.carts.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("deleting cart items: %w", err)
	}
	return res.DeletedCount, nil
}
