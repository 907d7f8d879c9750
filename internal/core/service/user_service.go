package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// UserService implements account administration.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

// IsAdmin reports whether the account registered under email holds the admin
// role. Unknown emails report false rather than an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

// PromoteToAdmin elevates an existing user to admin. The original system
// allowed an upsert here, which could plant a partial user document; this
// implementation requires the target to exist and fails with
// domain.ErrUserNotFound otherwise.
func (s *UserService) PromoteToAdmin(ctx context.Context, id string) error {
	if err := s.users.UpdateRole(ctx, id, domain.RoleAdmin); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user promoted to admin")
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
