package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository/memory"
)

func TestSearchGymsByTitle(t *testing.T) {
	gyms := memory.NewGymRepo()
	uc := NewSearchGymsUseCase(gyms)
	now := time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)

	seed := []string{"JavaScript Gym", "TypeScript Gym"}
	for i, title := range seed {
		if err := gyms.Create(context.Background(), &model.Gym{
			ID: fmt.Sprintf("gym-%02d", i+1), Title: title,
			Latitude: -23.5505, Longitude: -46.6333, CreatedAt: now,
		}); err != nil {
			t.Fatalf("seed gym: %v", err)
		}
	}

	found, err := uc.Execute(context.Background(), SearchGymsInput{Query: "JavaScript", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].Title != "JavaScript Gym" {
		t.Fatalf("expected only the JavaScript Gym, got %d results", len(found))
	}

	// Matching is case-insensitive.
	found, err = uc.Execute(context.Background(), SearchGymsInput{Query: "javascript", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected case-insensitive match, got %d results", len(found))
	}
}

func TestSearchGymsPaginated(t *testing.T) {
	gyms := memory.NewGymRepo()
	uc := NewSearchGymsUseCase(gyms)
	now := time.Date(2025, 7, 28, 8, 0, 0, 0, time.Local)

	for i := 1; i <= 22; i++ {
		if err := gyms.Create(context.Background(), &model.Gym{
			ID:    fmt.Sprintf("gym-%02d", i),
			Title: fmt.Sprintf("JavaScript Gym %d", i),
			Latitude: -23.5505, Longitude: -46.6333,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("seed gym: %v", err)
		}
	}

	found, err := uc.Execute(context.Background(), SearchGymsInput{Query: "JavaScript", Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 results on page 2, got %d", len(found))
	}
	if found[0].Title != "JavaScript Gym 21" || found[1].Title != "JavaScript Gym 22" {
		t.Errorf("wrong page contents: %q, %q", found[0].Title, found[1].Title)
	}

	// A page past the result set is empty, not an error.
	found, err = uc.Execute(context.Background(), SearchGymsInput{Query: "JavaScript", Page: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("expected empty page 3, got %d results", len(found))
	}
}
