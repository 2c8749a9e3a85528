package usecase

import (
	"context"
	"fmt"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// FetchUserCheckInsHistoryUseCase pages over a user's check-ins in
// creation order, 20 per page.
type FetchUserCheckInsHistoryUseCase struct {
	checkIns repository.CheckInRepository
}

func NewFetchUserCheckInsHistoryUseCase(checkIns repository.CheckInRepository) *FetchUserCheckInsHistoryUseCase {
	return &FetchUserCheckInsHistoryUseCase{checkIns: checkIns}
}

type FetchUserCheckInsHistoryInput struct {
	UserID string
	Page   int
}

func (uc *FetchUserCheckInsHistoryUseCase) Execute(ctx context.Context, in FetchUserCheckInsHistoryInput) ([]*model.CheckIn, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	checkIns, err := uc.checkIns.FindManyByUserID(ctx, in.UserID, page)
	if err != nil {
		return nil, fmt.Errorf("fetch check-ins: %w", err)
	}
	return checkIns, nil
}
