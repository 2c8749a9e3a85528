package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lucasmarqs/gym-checkin-api/internal/clock"
	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
	"github.com/lucasmarqs/gym-checkin-api/internal/utils"
)

// RegisterUseCase creates a user with a bcrypt-hashed credential, rejecting
// duplicate emails. The plaintext password never leaves this function.
type RegisterUseCase struct {
	users repository.UserRepository
	cost  int
	clk   clock.Clock
}

func NewRegisterUseCase(users repository.UserRepository, bcryptCost int, clk clock.Clock) *RegisterUseCase {
	return &RegisterUseCase{users: users, cost: bcryptCost, clk: clk}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Execute persists exactly one user on success and nothing on failure.
// The duplicate check runs before hashing so the common failure path skips
// the bcrypt work; the repository's unique constraint still catches a
// concurrent registration of the same email.
func (uc *RegisterUseCase) Execute(ctx context.Context, in RegisterInput) (*model.User, error) {
	_, err := uc.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("look up email: %w", err)
	}

	hash, err := utils.HashPassword(in.Password, uc.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         model.RoleMember,
		CreatedAt:    uc.clk.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
