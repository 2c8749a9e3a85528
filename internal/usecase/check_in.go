package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lucasmarqs/gym-checkin-api/internal/clock"
	"github.com/lucasmarqs/gym-checkin-api/internal/geo"
	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// DefaultMaxDistanceKm is the proximity threshold for a check-in: 100
// meters between the user's reported position and the gym.
const DefaultMaxDistanceKm = 0.1

// CheckInUseCase records a user's check-in at a gym. A check-in is allowed
// only when the gym exists, the user is within the distance threshold and
// the user has not checked in yet on the current calendar day.
type CheckInUseCase struct {
	checkIns      repository.CheckInRepository
	gyms          repository.GymRepository
	clk           clock.Clock
	maxDistanceKm float64
}

// NewCheckInUseCase wires the check-in flow. maxDistanceKm <= 0 falls back
// to DefaultMaxDistanceKm.
func NewCheckInUseCase(checkIns repository.CheckInRepository, gyms repository.GymRepository, clk clock.Clock, maxDistanceKm float64) *CheckInUseCase {
	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}
	return &CheckInUseCase{checkIns: checkIns, gyms: gyms, clk: clk, maxDistanceKm: maxDistanceKm}
}

type CheckInInput struct {
	UserID        string
	GymID         string
	UserLatitude  float64
	UserLongitude float64
}

// Execute runs the check-in. The clock is read exactly once so the
// same-day lookup and the stored timestamp can never straddle midnight.
// On any failure nothing is persisted.
func (uc *CheckInUseCase) Execute(ctx context.Context, in CheckInInput) (*model.CheckIn, error) {
	now := uc.clk.Now()

	gym, err := uc.gyms.FindByID(ctx, in.GymID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up gym: %w", err)
	}

	distance := geo.DistanceKm(
		geo.Coordinate{Latitude: in.UserLatitude, Longitude: in.UserLongitude},
		geo.Coordinate{Latitude: gym.Latitude, Longitude: gym.Longitude},
	)
	if distance > uc.maxDistanceKm {
		return nil, ErrMaxDistance
	}

	_, err = uc.checkIns.FindByUserIDOnDate(ctx, in.UserID, now)
	if err == nil {
		return nil, ErrMaxNumberOfCheckIns
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("look up today's check-in: %w", err)
	}

	checkIn := &model.CheckIn{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		GymID:     in.GymID,
		CreatedAt: now,
	}
	if err := uc.checkIns.Create(ctx, checkIn); err != nil {
		// A concurrent attempt can slip between the read and the write;
		// the storage-level unique index reports it here.
		if errors.Is(err, repository.ErrDuplicateCheckIn) {
			return nil, ErrMaxNumberOfCheckIns
		}
		return nil, fmt.Errorf("create check-in: %w", err)
	}
	return checkIn, nil
}
