package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
	"github.com/lucasmarqs/gym-checkin-api/internal/utils"
)

// AuthenticateUseCase checks an email/password pair against the stored
// bcrypt hash. Unknown email and wrong password both come back as
// ErrInvalidCredentials.
type AuthenticateUseCase struct {
	users repository.UserRepository
}

func NewAuthenticateUseCase(users repository.UserRepository) *AuthenticateUseCase {
	return &AuthenticateUseCase{users: users}
}

type AuthenticateInput struct {
	Email    string
	Password string
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, in AuthenticateInput) (*model.User, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if !utils.VerifyPassword(user.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
