package usecase

import (
	"context"
	"fmt"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// SearchGymsUseCase pages over gyms whose title contains the query,
// case-insensitive, 20 per page in creation order. A page past the end of
// the results is an empty slice, not an error.
type SearchGymsUseCase struct {
	gyms repository.GymRepository
}

func NewSearchGymsUseCase(gyms repository.GymRepository) *SearchGymsUseCase {
	return &SearchGymsUseCase{gyms: gyms}
}

type SearchGymsInput struct {
	Query string
	Page  int
}

func (uc *SearchGymsUseCase) Execute(ctx context.Context, in SearchGymsInput) ([]*model.Gym, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	gyms, err := uc.gyms.SearchMany(ctx, in.Query, page)
	if err != nil {
		return nil, fmt.Errorf("search gyms: %w", err)
	}
	return gyms, nil
}
