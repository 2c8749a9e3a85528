package usecase

import (
	"context"
	"fmt"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// NearbyGymsRadiusKm bounds the FetchNearbyGyms search.
const NearbyGymsRadiusKm = 10.0

// FetchNearbyGymsUseCase lists gyms within NearbyGymsRadiusKm of the
// user's position.
type FetchNearbyGymsUseCase struct {
	gyms repository.GymRepository
}

func NewFetchNearbyGymsUseCase(gyms repository.GymRepository) *FetchNearbyGymsUseCase {
	return &FetchNearbyGymsUseCase{gyms: gyms}
}

type FetchNearbyGymsInput struct {
	UserLatitude  float64
	UserLongitude float64
}

func (uc *FetchNearbyGymsUseCase) Execute(ctx context.Context, in FetchNearbyGymsInput) ([]*model.Gym, error) {
	gyms, err := uc.gyms.SearchManyNearby(ctx, in.UserLatitude, in.UserLongitude, NearbyGymsRadiusKm)
	if err != nil {
		return nil, fmt.Errorf("search nearby gyms: %w", err)
	}
	return gyms, nil
}
