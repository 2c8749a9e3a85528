package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// The one-check-in-per-day rule is a storage contract, not just use-case
// logic: Create itself must reject a second row for the same user and
// calendar day, exactly like the MySQL unique index does.
func TestCheckInRepoRejectsSameDayDuplicate(t *testing.T) {
	repo := NewCheckInRepo()
	day := time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)

	if err := repo.Create(context.Background(), &model.CheckIn{
		ID: "check-in-01", UserID: "user-01", GymID: "gym-01", CreatedAt: day,
	}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.Create(context.Background(), &model.CheckIn{
		ID: "check-in-02", UserID: "user-01", GymID: "gym-02", CreatedAt: day.Add(5 * time.Hour),
	})
	if !errors.Is(err, repository.ErrDuplicateCheckIn) {
		t.Fatalf("expected ErrDuplicateCheckIn, got %v", err)
	}

	// Another user on the same day is fine.
	if err := repo.Create(context.Background(), &model.CheckIn{
		ID: "check-in-03", UserID: "user-02", GymID: "gym-01", CreatedAt: day,
	}); err != nil {
		t.Errorf("other user same day: %v", err)
	}

	// Same user on the next day is fine.
	if err := repo.Create(context.Background(), &model.CheckIn{
		ID: "check-in-04", UserID: "user-01", GymID: "gym-01", CreatedAt: day.AddDate(0, 0, 1),
	}); err != nil {
		t.Errorf("same user next day: %v", err)
	}
}

func TestCheckInRepoFindByUserIDOnDate(t *testing.T) {
	repo := NewCheckInRepo()
	day := time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)

	if err := repo.Create(context.Background(), &model.CheckIn{
		ID: "check-in-01", UserID: "user-01", GymID: "gym-01", CreatedAt: day,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Any instant within the same calendar day finds the row.
	got, err := repo.FindByUserIDOnDate(context.Background(), "user-01", day.Add(10*time.Hour))
	if err != nil {
		t.Fatalf("same-day lookup: %v", err)
	}
	if got.ID != "check-in-01" {
		t.Errorf("wrong row: %+v", got)
	}

	// The next day finds nothing.
	_, err = repo.FindByUserIDOnDate(context.Background(), "user-01", day.AddDate(0, 0, 1))
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on next day, got %v", err)
	}
}
