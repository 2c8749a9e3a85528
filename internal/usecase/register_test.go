package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository/memory"
)

func newRegisterFixture() (*RegisterUseCase, *memory.UserRepo) {
	users := memory.NewUserRepo()
	clk := &fakeClock{now: time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)}
	return NewRegisterUseCase(users, bcrypt.MinCost, clk), users
}

func TestRegister(t *testing.T) {
	uc, _ := newRegisterFixture()

	user, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Password: "123456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected a generated user id")
	}
	if user.Name != "John Doe" || user.Email != "john.doe@example.com" {
		t.Errorf("unexpected user fields: %+v", user)
	}
	if user.Role != model.RoleMember {
		t.Errorf("self-registered users must be MEMBER, got %q", user.Role)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	uc, _ := newRegisterFixture()

	user, err := uc.Execute(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Password: "123456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash == "123456" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")); err != nil {
		t.Errorf("stored hash does not verify against the original password: %v", err)
	}
}

func TestRegisterWithExistingEmail(t *testing.T) {
	uc, users := newRegisterFixture()
	in := RegisterInput{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Password: "123456",
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := uc.Execute(context.Background(), in)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
	if users.Len() != 1 {
		t.Errorf("expected exactly one user record, got %d", users.Len())
	}
}
