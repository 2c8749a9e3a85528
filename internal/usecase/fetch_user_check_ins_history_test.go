package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository/memory"
)

// seedCheckIns inserts n check-ins for the user, one per day so the
// per-day uniqueness rule in the repository is respected.
func seedCheckIns(t *testing.T, checkIns *memory.CheckInRepo, userID string, n int) {
	t.Helper()
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < n; i++ {
		if err := checkIns.Create(context.Background(), &model.CheckIn{
			ID:        fmt.Sprintf("check-in-%02d", i+1),
			UserID:    userID,
			GymID:     "gym-01",
			CreatedAt: base.AddDate(0, 0, i),
		}); err != nil {
			t.Fatalf("seed check-in %d: %v", i+1, err)
		}
	}
}

func TestFetchCheckInHistory(t *testing.T) {
	checkIns := memory.NewCheckInRepo()
	uc := NewFetchUserCheckInsHistoryUseCase(checkIns)
	seedCheckIns(t, checkIns, "user-01", 2)

	history, err := uc.Execute(context.Background(), FetchUserCheckInsHistoryInput{UserID: "user-01", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 check-ins, got %d", len(history))
	}
	if history[0].ID != "check-in-01" || history[1].ID != "check-in-02" {
		t.Errorf("history out of creation order: %q, %q", history[0].ID, history[1].ID)
	}
}

func TestFetchPaginatedCheckInHistory(t *testing.T) {
	checkIns := memory.NewCheckInRepo()
	uc := NewFetchUserCheckInsHistoryUseCase(checkIns)
	seedCheckIns(t, checkIns, "user-01", 22)

	history, err := uc.Execute(context.Background(), FetchUserCheckInsHistoryInput{UserID: "user-01", Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 check-ins on page 2, got %d", len(history))
	}
	if history[0].ID != "check-in-21" || history[1].ID != "check-in-22" {
		t.Errorf("wrong page contents: %q, %q", history[0].ID, history[1].ID)
	}
}

func TestGetUserMetrics(t *testing.T) {
	checkIns := memory.NewCheckInRepo()
	uc := NewGetUserMetricsUseCase(checkIns)
	seedCheckIns(t, checkIns, "user-01", 2)

	n, err := uc.Execute(context.Background(), "user-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 check-ins, got %d", n)
	}

	n, err = uc.Execute(context.Background(), "user-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no check-ins for another user, got %d", n)
	}
}
