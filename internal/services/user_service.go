package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"contest-api/internal/models"
	"contest-api/internal/storage"
)

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) (string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserRole(ctx context.Context, id string, role models.UserRole) (models.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (int64, error)
}

type UserService struct {
	store  UserStore
	logger zerolog.Logger
}

func NewUserService(store UserStore, logger zerolog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// Create inserts the user unless a document with the same email already
// exists. Sign-in calls this on every visit, so the duplicate case is the
// common path, not an error.
func (s *UserService) Create(ctx context.Context, user *models.User) (string, bool, error) {
	existing, err := s.store.FindUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("Error checking existing user")
		return "", false, fmt.Errorf("checking existing user: %w", err)
	}
	if existing != nil {
		return "", true, nil
	}

	if user.Role == "" {
		user.Role = string(models.RoleMember)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	id, err := s.store.InsertUser(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", user.Email).Msg("Error creating user")
		return "", false, err
	}

	s.logger.Info().Str("user_id", id).Str("email", user.Email).Msg("User created")
	return id, false, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// IsAdmin reports whether the user with this email holds the admin role.
// An absent user is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == string(models.RoleAdmin), nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	res, err := s.store.SetUserRole(ctx, id, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, err
	}

	s.logger.Info().Str("user_id", id).Msg("User promoted to admin")
	return res, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Str("user_id", id).Int64("deleted", deleted).Msg("User deleted")
	return deleted, nil
}
