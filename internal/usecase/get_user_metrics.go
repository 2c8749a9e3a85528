package usecase

import (
	"context"
	"fmt"

	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// GetUserMetricsUseCase returns the user's total check-in count.
type GetUserMetricsUseCase struct {
	checkIns repository.CheckInRepository
}

func NewGetUserMetricsUseCase(checkIns repository.CheckInRepository) *GetUserMetricsUseCase {
	return &GetUserMetricsUseCase{checkIns: checkIns}
}

func (uc *GetUserMetricsUseCase) Execute(ctx context.Context, userID string) (int64, error) {
	n, err := uc.checkIns.CountByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count check-ins: %w", err)
	}
	return n, nil
}
