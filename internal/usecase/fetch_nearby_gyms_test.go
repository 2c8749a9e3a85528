package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository/memory"
)

func TestFetchNearbyGyms(t *testing.T) {
	gyms := memory.NewGymRepo()
	uc := NewFetchNearbyGymsUseCase(gyms)
	now := time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)

	// ~3 km from the user's position.
	if err := gyms.Create(context.Background(), &model.Gym{
		ID: "gym-near", Title: "Near Gym",
		Latitude: -23.5336612, Longitude: -47.4824978, CreatedAt: now,
	}); err != nil {
		t.Fatalf("seed gym: %v", err)
	}
	// Hundreds of km away.
	if err := gyms.Create(context.Background(), &model.Gym{
		ID: "gym-far", Title: "Far Gym",
		Latitude: -27.0610928, Longitude: -49.5229501, CreatedAt: now,
	}); err != nil {
		t.Fatalf("seed gym: %v", err)
	}

	found, err := uc.Execute(context.Background(), FetchNearbyGymsInput{
		UserLatitude:  -23.5336554,
		UserLongitude: -47.5133974,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].ID != "gym-near" {
		t.Fatalf("expected only the near gym, got %d results", len(found))
	}
}
