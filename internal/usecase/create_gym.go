package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lucasmarqs/gym-checkin-api/internal/clock"
	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// CreateGymUseCase registers a new gym. Coordinate range validation
// happens at the transport layer; here the input is trusted.
type CreateGymUseCase struct {
	gyms repository.GymRepository
	clk  clock.Clock
}

func NewCreateGymUseCase(gyms repository.GymRepository, clk clock.Clock) *CreateGymUseCase {
	return &CreateGymUseCase{gyms: gyms, clk: clk}
}

type CreateGymInput struct {
	Title       string
	Description *string
	Phone       *string
	Latitude    float64
	Longitude   float64
}

func (uc *CreateGymUseCase) Execute(ctx context.Context, in CreateGymInput) (*model.Gym, error) {
	gym := &model.Gym{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Phone:       in.Phone,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		CreatedAt:   uc.clk.Now(),
	}
	if err := uc.gyms.Create(ctx, gym); err != nil {
		return nil, fmt.Errorf("create gym: %w", err)
	}
	return gym, nil
}
