package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository/memory"
)

func newValidateFixture(t *testing.T, createdAt time.Time) (*ValidateCheckInUseCase, *memory.CheckInRepo, *fakeClock) {
	t.Helper()
	checkIns := memory.NewCheckInRepo()
	clk := &fakeClock{now: createdAt}
	uc := NewValidateCheckInUseCase(checkIns, clk)

	if err := checkIns.Create(context.Background(), &model.CheckIn{
		ID:        "check-in-01",
		UserID:    "user-01",
		GymID:     "gym-01",
		CreatedAt: createdAt,
	}); err != nil {
		t.Fatalf("seed check-in: %v", err)
	}
	return uc, checkIns, clk
}

func TestValidateCheckIn(t *testing.T) {
	createdAt := time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)
	uc, checkIns, clk := newValidateFixture(t, createdAt)

	clk.Set(createdAt.Add(10 * time.Minute))

	checkIn, err := uc.Execute(context.Background(), "check-in-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checkIn.ValidatedAt == nil || !checkIn.ValidatedAt.Equal(clk.now) {
		t.Errorf("expected validated_at %v, got %v", clk.now, checkIn.ValidatedAt)
	}

	stored, err := checkIns.FindByID(context.Background(), "check-in-01")
	if err != nil {
		t.Fatalf("reload check-in: %v", err)
	}
	if stored.ValidatedAt == nil {
		t.Error("validation was not persisted")
	}
}

func TestValidateCheckInAfterWindow(t *testing.T) {
	createdAt := time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)
	uc, checkIns, clk := newValidateFixture(t, createdAt)

	clk.Set(createdAt.Add(21 * time.Minute))

	_, err := uc.Execute(context.Background(), "check-in-01")
	if !errors.Is(err, ErrLateCheckInValidation) {
		t.Fatalf("expected ErrLateCheckInValidation, got %v", err)
	}

	stored, _ := checkIns.FindByID(context.Background(), "check-in-01")
	if stored.ValidatedAt != nil {
		t.Error("late validation must not be persisted")
	}
}

func TestValidateUnknownCheckIn(t *testing.T) {
	createdAt := time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)
	uc, _, _ := newValidateFixture(t, createdAt)

	_, err := uc.Execute(context.Background(), "missing")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}
