package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// GetUserProfileUseCase fetches a user by id.
type GetUserProfileUseCase struct {
	users repository.UserRepository
}

func NewGetUserProfileUseCase(users repository.UserRepository) *GetUserProfileUseCase {
	return &GetUserProfileUseCase{users: users}
}

func (uc *GetUserProfileUseCase) Execute(ctx context.Context, userID string) (*model.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	return user, nil
}
