package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vort-x/platform/models"
	"github.com/vort-x/platform/repositories"
)

type UserService interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetTheme(ctx context.Context, userID int) (models.ThemePreference, error)
	SetTheme(ctx context.Context, userID int, theme models.ThemePreference) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

func (s *userService) GetTheme(ctx context.Context, userID int) (models.ThemePreference, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.Theme == "" {
		return models.ThemeDark, nil
	}
	return user.Theme, nil
}

// SetTheme writes the preference on every explicit change; it is read once
// by clients at startup.
func (s *userService) SetTheme(ctx context.Context, userID int, theme models.ThemePreference) error {
	if theme != models.ThemeDark && theme != models.ThemeLight {
		return ErrInvalidTheme
	}
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Theme = theme
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store theme for user %d: %w", userID, err)
	}
	return nil
}
