package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucasmarqs/gym-checkin-api/internal/repository/memory"
)

func newAuthenticateFixture(t *testing.T) *AuthenticateUseCase {
	t.Helper()
	users := memory.NewUserRepo()
	clk := &fakeClock{now: time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)}
	reg := NewRegisterUseCase(users, bcrypt.MinCost, clk)
	if _, err := reg.Execute(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Password: "123456",
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewAuthenticateUseCase(users)
}

func TestAuthenticate(t *testing.T) {
	uc := newAuthenticateFixture(t)

	user, err := uc.Execute(context.Background(), AuthenticateInput{
		Email:    "john.doe@example.com",
		Password: "123456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "john.doe@example.com" {
		t.Errorf("wrong user returned: %+v", user)
	}
}

func TestAuthenticateWithWrongPassword(t *testing.T) {
	uc := newAuthenticateFixture(t)

	_, err := uc.Execute(context.Background(), AuthenticateInput{
		Email:    "john.doe@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateWithUnknownEmail(t *testing.T) {
	uc := newAuthenticateFixture(t)

	_, err := uc.Execute(context.Background(), AuthenticateInput{
		Email:    "nobody@example.com",
		Password: "123456",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
