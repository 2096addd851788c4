package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"contest-api/internal/models"
)

func (s *Store) ListContests(ctx context.Context) ([]models.Contest, error) {
	cur, err := s.contests.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing contests: %w", err)
	}
	contests := []models.Contest{}
	if err := cur.All(ctx, &contests); err != nil {
		return nil, fmt.Errorf("decoding contests: %w", err)
	}
	return contests, nil
}

func (s *Store) FindContestByID(ctx context.Context, id string) (*models.Contest, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var contest models.Contest
	err = s.contests.FindOne(ctx, bson.M{"_id": oid}).Decode(&contest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding contest: %w", err)
	}
	return &contest, nil
}

func (s *Store) InsertContest(ctx context.Context, contest *models.Contest) (string, error) {
	res, err := s.contests.InsertOne(ctx, contest)
	if err != nil {
		return "", fmt.Errorf("inserting contest: %w", err)
	}
	return insertedID(res), nil
}

func (s *Store) UpdateContest(ctx context.Context, id string, upd *models.ContestUpdate) (models.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	set := bson.M{
		"name":     upd.Name,
		"category": upd.Category,
		"price":    upd.Price,
		"contest":  upd.Description,
		"image":    upd.Image,
	}
	res, err := s.contests.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("updating contest: %w", err)
	}
	return models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (s *Store) DeleteContest(ctx context.Context, id string) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, err
	}
	res, err := s.contests.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("deleting contest: %w", err)
	}
	return res.DeletedCount, nil
}

// Gallery and features are read-only catalogs with no declared schema, so
// their documents pass through untouched.

func (s *Store) ListGallery(ctx context.Context) ([]bson.M, error) {
	return s.listRaw(ctx, s.gallery, "gallery")
}

func (s *Store) ListFeatures(ctx context.Context) ([]bson.M, error) {
	return s.listRaw(ctx, s.features, "features")
}

func (s *Store) listRaw(ctx context.Context, coll *mongo.Collection, name string) ([]bson.M, error) {
	cur, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", name, err)
	}
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return docs, nil
}
