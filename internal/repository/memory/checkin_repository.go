package memory

import (
	"context"
	"sync"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
	"github.com/lucasmarqs/gym-checkin-api/internal/repository"
)

// CheckInRepo is the in-memory repository.CheckInRepository. Like the
// MySQL implementation it rejects a second check-in for the same user and
// calendar day at insert time, so the storage-level uniqueness contract
// holds in tests too.
type CheckInRepo struct {
	mu    sync.Mutex
	items []*model.CheckIn
}

func NewCheckInRepo() *CheckInRepo { return &CheckInRepo{} }

func (r *CheckInRepo) Create(_ context.Context, ci *model.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, end := repository.DayBounds(ci.CreatedAt)
	for _, it := range r.items {
		if it.UserID == ci.UserID && !it.CreatedAt.Before(start) && it.CreatedAt.Before(end) {
			return repository.ErrDuplicateCheckIn
		}
	}
	cp := *ci
	r.items = append(r.items, &cp)
	return nil
}

func (r *CheckInRepo) Save(_ context.Context, ci *model.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == ci.ID {
			cp := *ci
			r.items[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *CheckInRepo) FindByID(_ context.Context, id string) (*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CheckInRepo) FindByUserIDOnDate(_ context.Context, userID string, date time.Time) (*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start, end := repository.DayBounds(date)
	for _, it := range r.items {
		if it.UserID == userID && !it.CreatedAt.Before(start) && it.CreatedAt.Before(end) {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CheckInRepo) FindManyByUserID(_ context.Context, userID string, page int) ([]*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if page < 1 {
		page = 1
	}
	matched := make([]*model.CheckIn, 0)
	for _, it := range r.items {
		if it.UserID == userID {
			matched = append(matched, it)
		}
	}
	lo := (page - 1) * repository.PageSize
	if lo >= len(matched) {
		return []*model.CheckIn{}, nil
	}
	hi := lo + repository.PageSize
	if hi > len(matched) {
		hi = len(matched)
	}
	out := make([]*model.CheckIn, 0, hi-lo)
	for _, it := range matched[lo:hi] {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *CheckInRepo) CountByUserID(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, it := range r.items {
		if it.UserID == userID {
			n++
		}
	}
	return n, nil
}
