package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository/memory"
)

func newCheckInFixture(t *testing.T) (*CheckInUseCase, *memory.CheckInRepo, *memory.GymRepo, *fakeClock) {
	t.Helper()
	checkIns := memory.NewCheckInRepo()
	gyms := memory.NewGymRepo()
	clk := &fakeClock{now: time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)}
	uc := NewCheckInUseCase(checkIns, gyms, clk, 0)

	if err := gyms.Create(context.Background(), &model.Gym{
		ID:        "gym-01",
		Title:     "Gym 01",
		Latitude:  -23.5336554,
		Longitude: -47.5133974,
		CreatedAt: clk.now,
	}); err != nil {
		t.Fatalf("seed gym: %v", err)
	}
	return uc, checkIns, gyms, clk
}

func TestCheckIn(t *testing.T) {
	uc, _, _, _ := newCheckInFixture(t)

	checkIn, err := uc.Execute(context.Background(), CheckInInput{
		UserID:        "user-01",
		GymID:         "gym-01",
		UserLatitude:  -23.5336554,
		UserLongitude: -47.5133974,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checkIn.ID == "" {
		t.Error("expected a generated check-in id")
	}
	if checkIn.UserID != "user-01" || checkIn.GymID != "gym-01" {
		t.Errorf("check-in references wrong entities: %+v", checkIn)
	}
	if checkIn.ValidatedAt != nil {
		t.Error("new check-in must not be validated")
	}
}

func TestCheckInTwiceInSameDay(t *testing.T) {
	uc, checkIns, _, _ := newCheckInFixture(t)
	in := CheckInInput{
		UserID:        "user-01",
		GymID:         "gym-01",
		UserLatitude:  -23.5336554,
		UserLongitude: -47.5133974,
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first check-in: %v", err)
	}
	_, err := uc.Execute(context.Background(), in)
	if !errors.Is(err, ErrMaxNumberOfCheckIns) {
		t.Fatalf("expected ErrMaxNumberOfCheckIns, got %v", err)
	}

	n, _ := checkIns.CountByUserID(context.Background(), "user-01")
	if n != 1 {
		t.Errorf("expected exactly one persisted check-in, got %d", n)
	}
}

func TestCheckInTwiceInDifferentDays(t *testing.T) {
	uc, _, _, clk := newCheckInFixture(t)
	in := CheckInInput{
		UserID:        "user-01",
		GymID:         "gym-01",
		UserLatitude:  -23.5336554,
		UserLongitude: -47.5133974,
	}

	first, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("first check-in: %v", err)
	}

	clk.Set(time.Date(2025, 7, 29, 8, 0, 0, 0, time.Local))

	second, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("next-day check-in: %v", err)
	}
	if second.ID == "" || second.ID == first.ID {
		t.Errorf("expected a fresh identity for the second check-in, got %q and %q", first.ID, second.ID)
	}
}

func TestCheckInJustBeforeAndAfterMidnight(t *testing.T) {
	uc, _, _, clk := newCheckInFixture(t)
	in := CheckInInput{
		UserID:        "user-01",
		GymID:         "gym-01",
		UserLatitude:  -23.5336554,
		UserLongitude: -47.5133974,
	}

	clk.Set(time.Date(2025, 7, 28, 23, 59, 59, 0, time.Local))
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("late-night check-in: %v", err)
	}

	// One second later it is a new calendar day.
	clk.Set(time.Date(2025, 7, 29, 0, 0, 0, 0, time.Local))
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("post-midnight check-in should start a new day: %v", err)
	}
}

func TestCheckInOnDistantGym(t *testing.T) {
	uc, checkIns, gyms, clk := newCheckInFixture(t)

	if err := gyms.Create(context.Background(), &model.Gym{
		ID:        "gym-02",
		Title:     "Gym 02",
		Latitude:  -23.5336612,
		Longitude: -47.4824978,
		CreatedAt: clk.now,
	}); err != nil {
		t.Fatalf("seed gym: %v", err)
	}

	_, err := uc.Execute(context.Background(), CheckInInput{
		UserID:        "user-01",
		GymID:         "gym-02",
		UserLatitude:  -23.5336554,
		UserLongitude: -47.5133974,
	})
	if !errors.Is(err, ErrMaxDistance) {
		t.Fatalf("expected ErrMaxDistance, got %v", err)
	}

	n, _ := checkIns.CountByUserID(context.Background(), "user-01")
	if n != 0 {
		t.Errorf("failed check-in must persist nothing, got %d rows", n)
	}
}

func TestCheckInOnUnknownGym(t *testing.T) {
	uc, checkIns, _, _ := newCheckInFixture(t)

	_, err := uc.Execute(context.Background(), CheckInInput{
		UserID:        "user-01",
		GymID:         "missing",
		UserLatitude:  -23.5336554,
		UserLongitude: -47.5133974,
	})
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}

	n, _ := checkIns.CountByUserID(context.Background(), "user-01")
	if n != 0 {
		t.Errorf("failed check-in must persist nothing, got %d rows", n)
	}
}
