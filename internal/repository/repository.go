package repository

import (
	"context"
	"time"

	"github.com/lucasmarqs/gym-checkin-api/internal/model"
)

// PageSize is the fixed number of rows returned by every paginated query.
const PageSize = 20

// UserRepository persists users. FindByEmail and FindByID return
// ErrNotFound when no user matches.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// GymRepository persists gyms. SearchMany matches the title
// case-insensitively and pages results in creation order; SearchManyNearby
// returns gyms within the given radius of a coordinate.
type GymRepository interface {
	Create(ctx context.Context, g *model.Gym) error
	FindByID(ctx context.Context, id string) (*model.Gym, error)
	SearchMany(ctx context.Context, query string, page int) ([]*model.Gym, error)
	SearchManyNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*model.Gym, error)
}

// CheckInRepository persists check-ins. Create must reject a second
// check-in for the same user on the same local calendar day with
// ErrDuplicateCheckIn. FindByUserIDOnDate looks within the calendar day of
// the given instant, in that instant's location.
type CheckInRepository interface {
	Create(ctx context.Context, ci *model.CheckIn) error
	Save(ctx context.Context, ci *model.CheckIn) error
	FindByID(ctx context.Context, id string) (*model.CheckIn, error)
	FindByUserIDOnDate(ctx context.Context, userID string, date time.Time) (*model.CheckIn, error)
	FindManyByUserID(ctx context.Context, userID string, page int) ([]*model.CheckIn, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
}

// DayBounds returns the [start, end) window of the calendar day containing
// t, in t's location. Both persistent and in-memory implementations use it
// so "same day" means the same thing everywhere.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
