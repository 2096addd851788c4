package services

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"contest-api/internal/models"
)

type CatalogStore interface {
	ListContests(ctx context.Context) ([]models.Contest, error)
	FindContestByID(ctx context.Context, id string) (*models.Contest, error)
	InsertContest(ctx context.Context, contest *models.Contest) (string, error)
	UpdateContest(ctx context.Context, id string, upd *models.ContestUpdate) (models.UpdateResult, error)
	DeleteContest(ctx context.Context, id string) (int64, error)
	ListGallery(ctx context.Context) ([]bson.M, error)
	ListFeatures(ctx context.Context) ([]bson.M, error)
}

type CatalogService struct {
	store  CatalogStore
	logger zerolog.Logger
}

func NewCatalogService(store CatalogStore, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

func (s *CatalogService) ListContests(ctx context.Context) ([]models.Contest, error) {
	return s.store.ListContests(ctx)
}

func (s *CatalogService) GetContest(ctx context.Context, id string) (*models.Contest, error) {
	return s.store.FindContestByID(ctx, id)
}

func (s *CatalogService) CreateContest(ctx context.Context, contest *models.Contest) (string, error) {
	id, err := s.store.InsertContest(ctx, contest)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("contest_id", id).Str("name", contest.Name).Msg("Contest created")
	return id, nil
}

func (s *CatalogService) UpdateContest(ctx context.Context, id string, upd *models.ContestUpdate) (models.UpdateResult, error) {
	res, err := s.store.UpdateContest(ctx, id, upd)
	if err != nil {
		return models.UpdateResult{}, err
	}

	s.logger.Info().Str("contest_id", id).Int64("modified", res.ModifiedCount).Msg("Contest updated")
	return res, nil
}

func (s *CatalogService) DeleteContest(ctx context.Context, id string) (int64, error) {
	deleted, err := s.store.DeleteContest(ctx, id)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("contest_id", id).Int64("deleted", deleted).Msg("Contest deleted")
	return deleted, nil
}

func (s *CatalogService) ListGallery(ctx context.Context) ([]bson.M, error) {
	return s.store.ListGallery(ctx)
}

func (s *CatalogService) ListFeatures(ctx context.Context) ([]bson.M, error) {
	return s.store.ListFeatures(ctx)
}
