package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/clock"
	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// CheckInValidationWindow is how long staff have to validate a check-in
// after it was created.
const CheckInValidationWindow = 20 * time.Minute

// ValidateCheckInUseCase stamps a check-in as validated by staff. The
// validation must happen within CheckInValidationWindow of the check-in's
// creation; afterwards it fails with ErrLateCheckInValidation.
type ValidateCheckInUseCase struct {
	checkIns repository.CheckInRepository
	clk      clock.Clock
}

func NewValidateCheckInUseCase(checkIns repository.CheckInRepository, clk clock.Clock) *ValidateCheckInUseCase {
	return &ValidateCheckInUseCase{checkIns: checkIns, clk: clk}
}

func (uc *ValidateCheckInUseCase) Execute(ctx context.Context, checkInID string) (*model.CheckIn, error) {
	now := uc.clk.Now()

	checkIn, err := uc.checkIns.FindByID(ctx, checkInID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("look up check-in: %w", err)
	}

	if now.Sub(checkIn.CreatedAt) > CheckInValidationWindow {
		return nil, ErrLateCheckInValidation
	}

	validatedAt := now
	checkIn.ValidatedAt = &validatedAt
	if err := uc.checkIns.Save(ctx, checkIn); err != nil {
		return nil, fmt.Errorf("save check-in: %w", err)
	}
	return checkIn, nil
}
