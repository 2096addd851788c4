package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"contest-api/internal/models"
)

type StatsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountContests(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type StatsService struct {
	store  StatsStore
	logger zerolog.Logger
}

func NewStatsService(store StatsStore, logger zerolog.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
	}
}

func (s *StatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	contests, err := s.store.CountContests(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting contests: %w", err)
	}
	payments, err := s.store.CountPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting payments: %w", err)
	}
	revenue, err := s.store.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		Users:         users,
		ContestsItems: contests,
		Pay:           payments,
		Revenue:       revenue,
	}, nil
}

// OrderStats is a placeholder: the per-category grouping stages are not
// defined yet, so it reports an empty result set.
func (s *StatsService) OrderStats(ctx context.Context) ([]bson.M, error) {
	return []bson.M{}, nil
}
